package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/coltools/numeric"
)

type wordsInput struct {
	Phrases []string `json:"phrases" jsonschema:"English number phrases or digit strings to convert"`
}

type wordsItem struct {
	Input string `json:"input"`
	Value int64  `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

type wordsOutput struct {
	Count int         `json:"count"`
	Items []wordsItem `json:"items"`
}

func handleWords(_ context.Context, _ *mcp.CallToolRequest, input wordsInput) (*mcp.CallToolResult, wordsOutput, error) {
	if len(input.Phrases) == 0 {
		return errResult(fmt.Errorf("phrases is required")), wordsOutput{}, nil
	}
	items := make([]wordsItem, 0, len(input.Phrases))
	for _, phrase := range input.Phrases {
		item := wordsItem{Input: phrase}
		n, err := numeric.WordsToNumber(phrase)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Value = n
		}
		items = append(items, item)
	}
	return nil, wordsOutput{Count: len(items), Items: items}, nil
}
