// ABOUTME: Server configuration loaded from QUILL_* environment variables.
// ABOUTME: Enforces security constraint: remote access requires auth token.
package editor

import (
	"errors"
	"fmt"
	"net"
	"os"
)

// ConfigError represents configuration validation errors.
var (
	ErrRemoteWithoutToken = errors.New(
		"QUILL_ALLOW_REMOTE is true but QUILL_AUTH_TOKEN is not set; refusing to start without authentication",
	)
	ErrNonLoopbackBind = errors.New(
		"QUILL_BIND is a non-loopback address but QUILL_ALLOW_REMOTE is not true; set QUILL_ALLOW_REMOTE=true and QUILL_AUTH_TOKEN to allow remote access",
	)
)

// Config holds server configuration loaded from environment variables.
type Config struct {
	Bind        string // Socket address (QUILL_BIND, default: 127.0.0.1:7780)
	AllowRemote bool   // Allow non-loopback connections (QUILL_ALLOW_REMOTE, default: false)
	AuthToken   string // Bearer token for the editor (QUILL_AUTH_TOKEN, optional)
}

// ConfigFromEnv loads configuration from QUILL_* environment variables with sensible defaults.
// A non-empty bindOverride (from a CLI flag) wins over QUILL_BIND.
func ConfigFromEnv(bindOverride string) (*Config, error) {
	bind := envOrDefault("QUILL_BIND", "127.0.0.1:7780")
	if bindOverride != "" {
		bind = bindOverride
	}

	allowRemote := false
	if v := os.Getenv("QUILL_ALLOW_REMOTE"); v == "true" || v == "1" || v == "yes" {
		allowRemote = true
	}

	authToken := os.Getenv("QUILL_AUTH_TOKEN")

	// Security: remote access requires auth token
	if allowRemote && authToken == "" {
		return nil, ErrRemoteWithoutToken
	}

	// Security: refuse non-loopback binds unless explicitly opting into remote access.
	// Only 127.0.0.0/8, ::1, and "localhost" are considered safe.
	if !allowRemote {
		if host, _, err := net.SplitHostPort(bind); err == nil && host != "" {
			ip := net.ParseIP(host)
			switch {
			case ip != nil && ip.IsLoopback():
			case ip != nil:
				return nil, fmt.Errorf("%w: QUILL_BIND=%s", ErrNonLoopbackBind, bind)
			case host == "localhost":
			default:
				return nil, fmt.Errorf("%w: QUILL_BIND=%s", ErrNonLoopbackBind, bind)
			}
		}
	}

	return &Config{
		Bind:        bind,
		AllowRemote: allowRemote,
		AuthToken:   authToken,
	}, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
