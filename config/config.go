package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the tabula configuration directory.
func Dir() string {
	return filepath.Join(baseDir(), "tabula")
}

// baseDir is the per-user configuration root: %APPDATA% on Windows,
// $XDG_CONFIG_HOME or ~/.config elsewhere.
func baseDir() string {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return ".config"
}

// ScriptDir returns the directory searched for named layout scripts.
func ScriptDir() string {
	return filepath.Join(Dir(), "layouts")
}

// ResolveScript finds a layout script. A path that exists is returned as
// is; otherwise name is looked up in ScriptDir, with ".lua" appended when
// it has no extension.
func ResolveScript(name string) (string, error) {
	if fileExists(name) {
		return name, nil
	}

	candidate := filepath.Join(ScriptDir(), name)
	if filepath.Ext(candidate) == "" {
		candidate += ".lua"
	}
	if !strings.ContainsRune(name, filepath.Separator) && fileExists(candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf("layout script %q: %w", name, fs.ErrNotExist)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
