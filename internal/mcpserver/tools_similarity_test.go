package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityTool_Levenshtein(t *testing.T) {
	input := similarityInput{A: []string{"kitten", "cat"}, B: []string{"sitting", "cat"}}
	_, output, err := handleSimilarity(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "levenshtein", output.Metric, "levenshtein is the default metric")
	require.Equal(t, 2, output.Count)
	assert.Equal(t, 3.0, output.Items[0].Score)
	assert.Zero(t, output.Items[1].Score)
}

func TestSimilarityTool_Jaccard(t *testing.T) {
	input := similarityInput{A: []string{"night"}, B: []string{"night"}, Metric: "jaccard"}
	_, output, err := handleSimilarity(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 1.0, output.Items[0].Score)
}

func TestSimilarityTool_Errors(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		input := similarityInput{A: []string{"a"}, B: []string{"a", "b"}}
		result, _, err := handleSimilarity(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("unknown metric", func(t *testing.T) {
		input := similarityInput{A: []string{"a"}, B: []string{"b"}, Metric: "cosine"}
		result, _, err := handleSimilarity(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
