package commands

import (
	"path/filepath"
	"runtime"
	"testing"
)

// withTempConfig подменяет пользовательский конфигурационный каталог на temp,
// чтобы токен и логин не писались в реальный ~/.config/Bloglist.
// Возвращает каталог, где появится поддиректория Bloglist.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return filepath.Join(dir, "Bloglist")
}
