// ABOUTME: Help display for the quill CLI with grouped flags, examples, and environment status.
package main

import (
	"fmt"
	"io"
	"os"
)

const quillASCII = `
        ,
       /|
      / |      quill
     /  |
    /___|___
        |
     ~~~'
`

// printHelp writes usage patterns, grouped flags, examples, and environment status to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, quillASCII)
	fmt.Fprintf(w, "quill %s: rich-text editor with saved documents and autosave\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quill [-server] [-bind addr]          Start the editor in the browser")
	fmt.Fprintln(w, "  quill -tui                            Browse stored slots in the terminal")
	fmt.Fprintln(w, "  quill -mcp [-profile id]              Serve document tools over MCP (stdio)")
	fmt.Fprintln(w, "  quill -import notes.md [-profile id]  Save markdown as the document")
	fmt.Fprintln(w, "  quill -export out.doc [-profile id]   Export the saved document")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Storage Flags:")
	fmt.Fprintln(w, "  -data-dir <dir>       Directory for quill.db (default: $XDG_DATA_HOME/quill)")
	fmt.Fprintln(w, "  -memory               Keep slots in memory only")
	fmt.Fprintln(w, "  -settings <file>      Settings file (default: $XDG_CONFIG_HOME/quill/settings.yaml)")
	fmt.Fprintln(w, "  -profile <id>         Profile for -mcp, -import, -export (default: $QUILL_PROFILE or default)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Server Flags:")
	fmt.Fprintln(w, "  -server               Start the editor HTTP server")
	fmt.Fprintln(w, "  -bind <addr>          Listen address (default: 127.0.0.1:7780)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  quill")
	fmt.Fprintln(w, "  quill -bind 127.0.0.1:8080")
	fmt.Fprintln(w, "  quill -import README.md -profile notes")
	fmt.Fprintln(w, "  quill -export notes.doc -profile notes")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  QUILL_BIND            %s\n", envStatus("QUILL_BIND"))
	fmt.Fprintf(w, "  QUILL_ALLOW_REMOTE    %s\n", envStatus("QUILL_ALLOW_REMOTE"))
	fmt.Fprintf(w, "  QUILL_AUTH_TOKEN      %s\n", envStatus("QUILL_AUTH_TOKEN"))
	fmt.Fprintf(w, "  QUILL_PROFILE         %s\n", envStatus("QUILL_PROFILE"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Remote binds require QUILL_ALLOW_REMOTE=true and QUILL_AUTH_TOKEN.")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
