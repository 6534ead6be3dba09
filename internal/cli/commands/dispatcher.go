package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"Bloglist/internal/config"
)

// Dispatch — единая точка входа для выполнения команд CLI.
// Печатает help/usage и возвращает код выхода процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// глобальный --help имеет приоритет над всем остальным
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	if name == "help" { // blogcli help [command]
		return runHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	err := c.Run(ctx, cfg, args[1:])
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	}
	fmt.Fprintf(Out, "%s error: %v\n", name, err)
	return 1
}

func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 0
	}
	if c, ok := Get(args[0]); ok {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 0
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return 2
}
