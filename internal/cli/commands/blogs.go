package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"Bloglist/internal/cli/api"
	"Bloglist/internal/config"
)

type blogView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

type blogsCmd struct{}

func (blogsCmd) Name() string        { return "blogs" }
func (blogsCmd) Description() string { return "List all blogs" }
func (blogsCmd) Usage() string       { return "blogs" }

func (blogsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/blogs"

	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var blogs []blogView
	if err := json.Unmarshal(body, &blogs); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if len(blogs) == 0 {
		fmt.Fprintln(Out, "No blogs yet")
		return nil
	}
	for _, b := range blogs {
		fmt.Fprintf(Out, "%s  %q by %s  (%d likes)  %s\n", b.ID, b.Title, b.Author, b.Likes, b.URL)
	}
	return nil
}

func init() { RegisterCmd(blogsCmd{}) }
