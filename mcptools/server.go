// ABOUTME: MCP server exposing the document tools over stdio.
package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer registers the document tools on a new MCP server.
func NewServer(t *Tools, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "quill", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_document",
		Description: "Read the saved document (or the autosave) as markup and plain text with its word count.",
	}, handler(t.ReadDocument))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_document",
		Description: "Save markup or markdown as the document. Empty documents are not saved.",
	}, handler(t.SaveDocument))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_replace",
		Description: "Replace every occurrence of a text in the saved document. Only text is matched, never tags.",
	}, handler(t.FindReplace))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "word_count",
		Description: "Count the words of the given markup or of a stored document.",
	}, handler(t.WordCount))

	return server
}

// handler adapts a tool method to the SDK's typed handler signature.
func handler[In, Out any](fn func(context.Context, In) (Out, error)) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		out, err := fn(ctx, in)
		return nil, out, err
	}
}

// Serve runs the server on stdin/stdout until the client disconnects or ctx ends.
func Serve(ctx context.Context, server *mcp.Server) error {
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
