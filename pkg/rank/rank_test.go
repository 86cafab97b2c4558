package rank

import (
	"testing"

	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/bastiangx/lexigram/pkg/fingerprint"
	"github.com/bastiangx/lexigram/pkg/permute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, words []dictionary.Entry) (*fingerprint.Table, permute.Permutation) {
	t.Helper()
	perm := permute.Derive(words)
	table, overflowed := fingerprint.Build(words, perm)
	require.Empty(t, overflowed)
	return table, perm
}

func TestExpandCartesianProductAndSortsDescending(t *testing.T) {
	words := []dictionary.Entry{
		{Word: "listen", Score: 100},
		{Word: "silent", Score: 50},
		{Word: "hello", Score: 10},
	}
	table, _ := buildTable(t, words)

	var listenProduct fingerprint.Product
	for p, spellings := range table.Spellings {
		for _, w := range spellings {
			if w == "listen" {
				listenProduct = p
			}
		}
	}
	require.NotZero(t, listenProduct)

	answers := Expand([][]fingerprint.Product{{listenProduct}}, table, nil)
	assert.Equal(t, []string{"listen", "silent"}, answers)
}

func TestExpandPrependsIncludesInOrder(t *testing.T) {
	words := []dictionary.Entry{{Word: "eat", Score: 10}}
	table, _ := buildTable(t, words)

	var eatProduct fingerprint.Product
	for p := range table.Spellings {
		eatProduct = p
	}

	answers := Expand([][]fingerprint.Product{{eatProduct}}, table, []string{"the", "ai"})
	require.Len(t, answers, 1)
	assert.Equal(t, "the ai eat", answers[0])
}

func TestExpandSortsMultipleAnswersDescendingByMeanScore(t *testing.T) {
	words := []dictionary.Entry{
		{Word: "cat", Score: 100},
		{Word: "dog", Score: 10},
	}
	table, _ := buildTable(t, words)

	var catProduct, dogProduct fingerprint.Product
	for p, spellings := range table.Spellings {
		if spellings[0] == "cat" {
			catProduct = p
		} else {
			dogProduct = p
		}
	}

	answers := Expand([][]fingerprint.Product{{dogProduct}, {catProduct}}, table, nil)
	require.Len(t, answers, 2)
	assert.Equal(t, []string{"cat", "dog"}, answers)
}
