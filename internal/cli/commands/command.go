package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"Bloglist/internal/config"
)

// ErrUsage возвращают команды при некорректных аргументах: диспетчер покажет usage.
var ErrUsage = errors.New("usage")

// Command — подкоманда CLI.
type Command interface {
	// Name — имя команды, как его набирает пользователь, например "login".
	Name() string
	// Description — короткое описание для help.
	Description() string
	// Usage — строка использования, например "login <username> <password>".
	Usage() string
	// Run выполняет команду; args — аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry — зарегистрированные команды по имени.
var registry = map[string]Command{}

// Out — writer для вывода CLI. По умолчанию os.Stdout, в тестах переназначается.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду в реестр. Вызывается из init() каждой команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get возвращает команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает все команды, отсортированные по имени.
func List() []Command {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]Command, 0, len(names))
	for _, name := range names {
		list = append(list, registry[name])
	}
	return list
}

// FormatGlobalUsage собирает общий help по всем командам.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("Bloglist CLI\n\n")
	b.WriteString("Usage:\n")
	b.WriteString("  blogcli [--base-url <host:port>] <command> [args]\n\n")
	b.WriteString("Commands:\n")
	for _, c := range List() {
		fmt.Fprintf(&b, "  %-32s %s\n", c.Usage(), c.Description())
	}
	return b.String()
}
