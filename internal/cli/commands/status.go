package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"Bloglist/internal/cli/api"
	fsrepo "Bloglist/internal/cli/repo/fs"
	"Bloglist/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show auth status and server reachability" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	store := fsrepo.AuthFSStore{}

	username, err := store.LoadLogin()
	if err != nil {
		fmt.Fprintln(Out, "Status: anonymous")
	} else {
		fmt.Fprintf(Out, "Status: logged in as %s\n", username)
	}

	// проверяем доступность сервера публичным эндпоинтом
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/blogs"
	resp, _, err := api.GetJSON(endpoint, "")
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d", resp.StatusCode)
	}
	fmt.Fprintf(Out, "Server: %s OK\n", cfg.ServerURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
