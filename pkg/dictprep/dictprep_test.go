package dictprep

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOneGramLineSumsYearBuckets(t *testing.T) {
	word, total, ok := parseOneGramLine("hello\t1990,12,3\t1991,8,2")
	require.True(t, ok)
	assert.Equal(t, "hello", word)
	assert.Equal(t, uint64(20), total)
}

func TestParseOneGramLineSkipsCorruptBuckets(t *testing.T) {
	word, total, ok := parseOneGramLine("hello\t1990,notanumber,3\t1991,8,2")
	require.True(t, ok)
	assert.Equal(t, "hello", word)
	assert.Equal(t, uint64(8), total)
}

func TestParseOneGramLineRejectsBareWord(t *testing.T) {
	_, _, ok := parseOneGramLine("hello")
	assert.False(t, ok)
}

func TestFilterAlphabeticMergesCaseCollisions(t *testing.T) {
	totals := map[string]uint64{
		"The":   30,
		"the":   70,
		"don't": 99,
		"x1":    5,
	}
	filtered := FilterAlphabetic(totals)
	assert.Equal(t, map[string]uint64{"the": 100}, filtered)
}

func TestAssignScoresUsesLogFormulaAndDefaultCount(t *testing.T) {
	counts := map[string]uint64{"the": 80}
	scored, err := AssignScores(strings.NewReader("the\nzzz\n"), counts)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	// count 80 is twice the default, so log2(2)*100 = 100; an unseen word
	// falls back to the default count and scores log2(1)*100 = 0.
	assert.Equal(t, ScoredWord{Word: "the", Score: 100}, scored[0])
	assert.Equal(t, ScoredWord{Word: "zzz", Score: 0}, scored[1])
}

func TestAssignScoresSortsDescending(t *testing.T) {
	counts := map[string]uint64{"common": 4000, "rare": 50}
	scored, err := AssignScores(strings.NewReader("rare\ncommon\n"), counts)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, "common", scored[0].Word)
	assert.Equal(t, "rare", scored[1].Word)
}

func TestWriteCountsTableEmitsTabSeparatedLines(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCountsTable(&buf, []ScoredWord{
		{Word: "the", Score: 100},
		{Word: "zzz", Score: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, "the\t100\nzzz\t0\n", buf.String())
}
