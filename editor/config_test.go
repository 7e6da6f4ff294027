// ABOUTME: Tests for QUILL_* environment configuration and its remote-access guards.
package editor

import (
	"errors"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("QUILL_BIND", "")
	t.Setenv("QUILL_ALLOW_REMOTE", "")
	t.Setenv("QUILL_AUTH_TOKEN", "")

	cfg, err := ConfigFromEnv("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bind != "127.0.0.1:7780" {
		t.Errorf("Bind = %q", cfg.Bind)
	}
	if cfg.AllowRemote {
		t.Error("AllowRemote should default to false")
	}
}

func TestConfigBindOverride(t *testing.T) {
	t.Setenv("QUILL_BIND", "127.0.0.1:9000")
	t.Setenv("QUILL_ALLOW_REMOTE", "")

	cfg, err := ConfigFromEnv("localhost:9100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bind != "localhost:9100" {
		t.Errorf("Bind = %q, want flag override", cfg.Bind)
	}
}

func TestConfigRemoteRequiresToken(t *testing.T) {
	t.Setenv("QUILL_ALLOW_REMOTE", "true")
	t.Setenv("QUILL_AUTH_TOKEN", "")

	if _, err := ConfigFromEnv(""); !errors.Is(err, ErrRemoteWithoutToken) {
		t.Errorf("err = %v, want ErrRemoteWithoutToken", err)
	}
}

func TestConfigNonLoopbackBind(t *testing.T) {
	t.Setenv("QUILL_ALLOW_REMOTE", "")
	t.Setenv("QUILL_AUTH_TOKEN", "")

	for _, bind := range []string{"0.0.0.0:7780", "example.com:7780"} {
		if _, err := ConfigFromEnv(bind); !errors.Is(err, ErrNonLoopbackBind) {
			t.Errorf("ConfigFromEnv(%q) err = %v, want ErrNonLoopbackBind", bind, err)
		}
	}
}

func TestConfigRemoteWithToken(t *testing.T) {
	t.Setenv("QUILL_ALLOW_REMOTE", "yes")
	t.Setenv("QUILL_AUTH_TOKEN", "s3cret")

	cfg, err := ConfigFromEnv("0.0.0.0:7780")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.AllowRemote || cfg.AuthToken != "s3cret" {
		t.Errorf("cfg = %+v", cfg)
	}
}
