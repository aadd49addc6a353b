package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/coltools/naming"
)

type renameCaseInput struct {
	Names []string `json:"names"          jsonschema:"Names to convert"`
	Case  string   `json:"case,omitempty" jsonschema:"Target case: snake\\, camel\\, pascal\\, kebab\\, train\\, or pascal-snake. Defaults to COLTOOLS_RENAME_CASE."`
}

type renameCaseItem struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type renameCaseOutput struct {
	Case  string           `json:"case"`
	Count int              `json:"count"`
	Items []renameCaseItem `json:"items"`
}

func handleRenameCase(_ context.Context, _ *mcp.CallToolRequest, input renameCaseInput) (*mcp.CallToolResult, renameCaseOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names is required")), renameCaseOutput{}, nil
	}
	caseName := input.Case
	if caseName == "" {
		caseName = cfg.RenameCase
	}
	c, err := naming.ParseCase(caseName)
	if err != nil {
		return errResult(err), renameCaseOutput{}, nil
	}

	items := make([]renameCaseItem, 0, len(input.Names))
	for _, name := range input.Names {
		items = append(items, renameCaseItem{Input: name, Output: c.Convert(name)})
	}
	return nil, renameCaseOutput{Case: c.String(), Count: len(items), Items: items}, nil
}
