// ABOUTME: XDG-based data and config directory resolution for the quill CLI.
// ABOUTME: Honors XDG_DATA_HOME / XDG_CONFIG_HOME and falls back to ~/.local/share/quill and ~/.config/quill.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "quill"

// defaultDataDir returns where quill.db lives.
func defaultDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// defaultConfigDir returns where settings.yaml is looked up.
func defaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// xdgDir resolves the quill directory under the XDG base named by envVar, or
// under the home-relative fallback when the variable is unset.
func xdgDir(envVar string, fallback ...string) (string, error) {
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(base, appDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, appDirName)...), nil
}
