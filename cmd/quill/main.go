// ABOUTME: CLI entrypoint for the quill editor with server, slot browser, MCP, import, and export modes.
// ABOUTME: Wires the slot store, settings, editor HTTP server, and signal handling.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/2389-research/quill/controller"
	"github.com/2389-research/quill/document"
	"github.com/2389-research/quill/editor"
	"github.com/2389-research/quill/mcptools"
	"github.com/2389-research/quill/store"
	"github.com/2389-research/quill/tui"
)

var version = "dev"

const (
	maxSessions     = 1000
	sessionTTL      = 24 * time.Hour
	cleanupInterval = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// config holds all CLI configuration parsed from flags.
type config struct {
	serverMode   bool
	bind         string
	dataDir      string
	settingsPath string
	memory       bool
	tuiMode      bool
	mcpMode      bool
	profile      string
	importFile   string
	exportFile   string
	showVersion  bool
}

func main() {
	loadDotEnvAuto()

	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("quill %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg))
}

// parseFlags parses command-line flags and returns a populated config.
func parseFlags() config {
	var cfg config

	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.BoolVar(&cfg.serverMode, "server", false, "Start the editor HTTP server (default mode)")
	fs.StringVar(&cfg.bind, "bind", "", "Listen address (default: $QUILL_BIND or 127.0.0.1:7780)")
	fs.StringVar(&cfg.dataDir, "data-dir", "", "Data directory for quill.db (default: $XDG_DATA_HOME/quill)")
	fs.StringVar(&cfg.settingsPath, "settings", "", "Settings file (default: $XDG_CONFIG_HOME/quill/settings.yaml)")
	fs.BoolVar(&cfg.memory, "memory", false, "Keep slots in memory only")
	fs.BoolVar(&cfg.tuiMode, "tui", false, "Browse stored slots in the terminal")
	fs.BoolVar(&cfg.mcpMode, "mcp", false, "Serve document tools over MCP on stdio")
	fs.StringVar(&cfg.profile, "profile", envOrDefault("QUILL_PROFILE", "default"), "Profile used by -mcp, -import and -export")
	fs.StringVar(&cfg.importFile, "import", "", "Save a markdown file as the profile's document")
	fs.StringVar(&cfg.exportFile, "export", "", "Write the profile's document to a .doc file")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(os.Stderr, version)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	return cfg
}

// run dispatches to the appropriate mode based on the config.
// Returns an exit code: 0 for success, 1 for failure.
func run(cfg config) int {
	settings, err := loadSettings(cfg.settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
	}

	backend, source := openBackend(cfg)
	defer backend.Close()

	switch {
	case cfg.importFile != "":
		return runImport(cfg, backend)
	case cfg.exportFile != "":
		return runExport(cfg, backend)
	case cfg.mcpMode:
		return runMCP(cfg, backend)
	case cfg.tuiMode:
		return runTUI(backend, source, settings)
	default:
		return runServer(cfg, backend, settings)
	}
}

// resolveDataDir returns the override if set, otherwise the XDG default.
func resolveDataDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultDataDir()
}

// loadSettings reads the settings file, defaulting to the XDG config location.
func loadSettings(path string) (controller.Settings, error) {
	if path == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return controller.DefaultSettings(), err
		}
		path = filepath.Join(dir, "settings.yaml")
	}
	return controller.LoadSettings(path)
}

// openBackend opens the sqlite slot store, falling back to memory when it is
// unavailable. The returned source names the store for display.
func openBackend(cfg config) (store.Backend, string) {
	if cfg.memory {
		return store.NewMemoryStore(), "memory"
	}

	dataDir, err := resolveDataDir(cfg.dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not resolve data dir: %v (slots kept in memory)\n", err)
		return store.NewMemoryStore(), "memory"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not create data dir: %v (slots kept in memory)\n", err)
		return store.NewMemoryStore(), "memory"
	}

	path := filepath.Join(dataDir, "quill.db")
	db, err := store.OpenSqlite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (slots kept in memory)\n", err)
		return store.NewMemoryStore(), "memory"
	}
	return db, path
}

// runServer serves the editor until SIGINT or SIGTERM.
func runServer(cfg config, backend store.Backend, settings controller.Settings) int {
	serverCfg, err := editor.ConfigFromEnv(cfg.bind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	sessions := editor.NewSessionStore(backend, settings, maxSessions, sessionTTL)
	stopCleanup := sessions.StartCleanup(cleanupInterval)
	defer stopCleanup()

	var opts []editor.ServerOption
	if serverCfg.AuthToken != "" {
		opts = append(opts, editor.WithAuthToken(serverCfg.AuthToken))
	}
	httpServer := editor.NewServer(sessions, backend, settings, opts...).HTTPServer(serverCfg.Bind)

	// Set up context with signal handling for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("editor shutdown error=%v", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "quill %s listening on http://%s\n", version, serverCfg.Bind)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runTUI opens the slot browser.
func runTUI(backend store.Backend, source string, settings controller.Settings) int {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	err = tui.Run(backend, tui.Options{
		Source:         source,
		ExportDir:      wd,
		ExportFilename: settings.ExportFilename,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runMCP serves the document tools for the configured profile on stdio.
func runMCP(cfg config, backend store.Backend) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := mcptools.NewServer(mcptools.New(backend, cfg.profile), version)
	if err := mcptools.Serve(ctx, server); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runImport saves a markdown file as the profile's document.
func runImport(cfg config, backend store.Backend) int {
	source, err := os.ReadFile(cfg.importFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	out, err := mcptools.New(backend, cfg.profile).SaveDocument(context.Background(), mcptools.SaveInput{Markdown: string(source)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "%s (profile %s)\n", out.Status, cfg.profile)
	if !out.Saved {
		return 1
	}
	return 0
}

// runExport writes the profile's document as a word-processor file.
func runExport(cfg config, backend store.Backend) int {
	markup, ok, err := backend.Get(cfg.profile, store.KeyDoc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if !ok || document.IsBlank(markup) {
		fmt.Fprintf(os.Stderr, "error: %s (profile %s)\n", controller.StatusNoDocument, cfg.profile)
		return 1
	}
	if err := os.WriteFile(cfg.exportFile, document.ExportShell(markup), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "Exported %s\n", cfg.exportFile)
	return 0
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
