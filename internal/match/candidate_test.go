package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	candidates := []string{
		"object:string<application/json>",
		"string<application/json>:object",
		"object:string<application/yaml>",
		"object:string<text/csv>",
		"object:string<application/json>",
	}

	ranked := Rank("object:string<application/jsn>", candidates, DefaultThreshold, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "object:string<application/json>", ranked[0].Name)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankThresholdAndLimit(t *testing.T) {
	candidates := []string{"alpha", "beta", "gamma"}

	assert.Empty(t, Rank("zzzzzz", candidates, DefaultThreshold, 0))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, Rank("x", candidates, 0, 0).Names())
	assert.Len(t, Rank("x", candidates, 0, 1), 1)
}
