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

type createBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type postCmd struct{}

func (postCmd) Name() string        { return "post" }
func (postCmd) Description() string { return "Create a blog (requires login)" }
func (postCmd) Usage() string       { return "post <title> <author> <url>" }

func (postCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}

	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return errors.New("not logged in, run: login <username> <password>")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/blogs"
	req := createBlogRequest{Title: args[0], Author: args[1], URL: args[2]}

	resp, body, err := api.PostJSON(endpoint, req, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("token expired or invalid, login again")
	}
	if resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var created blogView
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Created blog %s (%s)\n", created.ID, created.Title)
	return nil
}

func init() { RegisterCmd(postCmd{}) }
