package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/coltools/geo"
)

type geoConvertInput struct {
	Values []string `json:"values" jsonschema:"Point geometries to convert"`
	Target string   `json:"target" jsonschema:"Target format: wkt (decode hex WKB) or wkb (encode WKT as hex WKB)"`
}

type geoConvertItem struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

type geoConvertOutput struct {
	Target string           `json:"target"`
	Count  int              `json:"count"`
	Items  []geoConvertItem `json:"items"`
}

func handleGeoConvert(_ context.Context, _ *mcp.CallToolRequest, input geoConvertInput) (*mcp.CallToolResult, geoConvertOutput, error) {
	if len(input.Values) == 0 {
		return errResult(fmt.Errorf("values is required")), geoConvertOutput{}, nil
	}
	if input.Target != "wkt" && input.Target != "wkb" {
		return errResult(fmt.Errorf("unknown target %q: want wkt or wkb", input.Target)), geoConvertOutput{}, nil
	}

	items := make([]geoConvertItem, 0, len(input.Values))
	for _, v := range input.Values {
		item := geoConvertItem{Input: v}
		switch input.Target {
		case "wkb":
			p, err := geo.ParseWKT(v)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Output = p.EncodeWKBHex()
			}
		case "wkt":
			p, err := geo.DecodeWKBHex(v)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Output = p.WKT()
			}
		}
		items = append(items, item)
	}
	return nil, geoConvertOutput{Target: input.Target, Count: len(items), Items: items}, nil
}
