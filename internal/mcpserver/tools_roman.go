package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/coltools/numeric"
)

type romanInput struct {
	Values []int64  `json:"values,omitempty"   jsonschema:"Integers to encode as roman numerals (1..3999)"`
	Roman  []string `json:"roman,omitempty"    jsonschema:"Roman numerals to decode. Set exactly one of values or roman."`
}

type romanItem struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Value  int64  `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

type romanOutput struct {
	Count int         `json:"count"`
	Items []romanItem `json:"items"`
}

func handleRoman(_ context.Context, _ *mcp.CallToolRequest, input romanInput) (*mcp.CallToolResult, romanOutput, error) {
	if (len(input.Values) == 0) == (len(input.Roman) == 0) {
		return errResult(fmt.Errorf("set exactly one of values or roman")), romanOutput{}, nil
	}

	if len(input.Values) > 0 {
		items := make([]romanItem, 0, len(input.Values))
		for _, v := range input.Values {
			item := romanItem{Input: fmt.Sprintf("%d", v)}
			s, err := numeric.ToRoman(int(v))
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Output = s
			}
			items = append(items, item)
		}
		return nil, romanOutput{Count: len(items), Items: items}, nil
	}

	items := make([]romanItem, 0, len(input.Roman))
	for _, s := range input.Roman {
		item := romanItem{Input: s}
		n, err := numeric.FromRoman(s)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Value = int64(n)
		}
		items = append(items, item)
	}
	return nil, romanOutput{Count: len(items), Items: items}, nil
}
