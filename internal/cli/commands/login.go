package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"Bloglist/internal/cli/api"
	fsrepo "Bloglist/internal/cli/repo/fs"
	"Bloglist/internal/config"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the bearer token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/login"
	req := loginRequest{Username: args[0], Password: args[1]}

	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid username or password")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if lr.Token == "" {
		return errors.New("no token in response")
	}

	store := fsrepo.AuthFSStore{}
	if err := store.Save(lr.Token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := store.SaveLogin(lr.Username); err != nil {
		return fmt.Errorf("saving username: %w", err)
	}

	fmt.Fprintf(Out, "Logged in as %s\n", lr.Username)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
