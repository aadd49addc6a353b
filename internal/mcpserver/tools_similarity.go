package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/coltools/similarity"
)

type similarityInput struct {
	A      []string `json:"a"                jsonschema:"Left-hand strings"`
	B      []string `json:"b"                jsonschema:"Right-hand strings\\, same length as a"`
	Metric string   `json:"metric,omitempty" jsonschema:"Similarity metric: levenshtein (default) or jaccard"`
	NGram  int      `json:"ngram,omitempty"  jsonschema:"N-gram size for jaccard. Defaults to COLTOOLS_SIMILARITY_NGRAM."`
}

type similarityItem struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

type similarityOutput struct {
	Metric string           `json:"metric"`
	Count  int              `json:"count"`
	Items  []similarityItem `json:"items"`
}

func handleSimilarity(_ context.Context, _ *mcp.CallToolRequest, input similarityInput) (*mcp.CallToolResult, similarityOutput, error) {
	if len(input.A) == 0 || len(input.A) != len(input.B) {
		return errResult(fmt.Errorf("a and b must be non-empty arrays of equal length")), similarityOutput{}, nil
	}
	metric := input.Metric
	if metric == "" {
		metric = "levenshtein"
	}
	ngram := input.NGram
	if ngram == 0 {
		ngram = cfg.SimilarityNGram
	}

	items := make([]similarityItem, 0, len(input.A))
	for i := range input.A {
		item := similarityItem{A: input.A[i], B: input.B[i]}
		switch metric {
		case "levenshtein":
			item.Score = float64(similarity.Levenshtein(input.A[i], input.B[i]))
		case "jaccard":
			score, err := similarity.JaccardNGram(input.A[i], input.B[i], ngram)
			if err != nil {
				return errResult(err), similarityOutput{}, nil
			}
			item.Score = score
		default:
			return errResult(fmt.Errorf("unknown metric %q: want levenshtein or jaccard", metric)), similarityOutput{}, nil
		}
		items = append(items, item)
	}
	return nil, similarityOutput{Metric: metric, Count: len(items), Items: items}, nil
}
