package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Bloglist/internal/cli/commands"
	"Bloglist/internal/config"
)

// заполняются через -ldflags при сборке релиза
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("Bloglist CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if code := commands.Dispatch(ctx, cfg, flag.Args()); code != 0 {
		os.Exit(code)
	}
}
