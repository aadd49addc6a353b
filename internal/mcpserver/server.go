// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes coltools conversions as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/coltools"
)

const serverInstructions = `coltools MCP server — column-wise conversion utilities: roman numerals, English number words, name case conversion, string similarity, and WKT/WKB point geometry.

Every tool accepts arrays of values and returns one result per input value in the same order. A value that cannot be converted reports a per-item error instead of failing the whole call, matching columnar null-on-error semantics.

Configuration: defaults are configurable via COLTOOLS_* environment variables set in your MCP client config.

Key settings:
- COLTOOLS_SIMILARITY_NGRAM (default: 2) — default n-gram size for the similarity tool
- COLTOOLS_RENAME_CASE (default: snake) — default target case for rename_case`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "coltools", Version: coltools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "roman",
		Description: "Convert integers to roman numerals, or roman numerals back to integers with decode=true. The supported encode domain is 1 through 3999. Decoding is case-insensitive and accepts non-canonical but summable numerals.",
	}, handleRoman)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "words",
		Description: "Convert English number phrases (\"three hundred and nine\", \"forty-two\") or digit strings to integers. Malformed phrases report a per-item error.",
	}, handleWords)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_case",
		Description: "Convert names between naming conventions: snake, camel, pascal, kebab, train, pascal-snake. The default target case is configurable via COLTOOLS_RENAME_CASE.",
	}, handleRenameCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "similarity",
		Description: "Score pairwise string similarity across two equal-length arrays. Metrics: levenshtein (edit distance) and jaccard (n-gram set similarity, size configurable via COLTOOLS_SIMILARITY_NGRAM).",
	}, handleSimilarity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "geo_convert",
		Description: "Convert 2D point geometries between WKT (\"POINT (30 10)\") and hex-encoded WKB. Direction is chosen with target=wkt or target=wkb.",
	}, handleGeoConvert)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
