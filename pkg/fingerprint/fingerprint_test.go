package fingerprint

import (
	"testing"

	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/bastiangx/lexigram/pkg/permute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBucketizesAnagramsTogether(t *testing.T) {
	words := []dictionary.Entry{
		{Word: "listen", Score: 10},
		{Word: "silent", Score: 8},
		{Word: "enlist", Score: 6},
		{Word: "tinsel", Score: 4},
		{Word: "hello", Score: 2},
	}
	perm := permute.Derive(words)

	table, overflowed := Build(words, perm)
	require.Empty(t, overflowed)

	var anagramProduct Product
	for p, spellings := range table.Spellings {
		if len(spellings) > 1 {
			anagramProduct = p
			break
		}
	}
	require.NotZero(t, anagramProduct, "expected at least one shared fingerprint among the anagrams")

	spellings := table.Spellings[anagramProduct]
	assert.ElementsMatch(t, []string{"listen", "silent", "enlist", "tinsel"}, spellings)
	assert.Equal(t, 6, table.Length[anagramProduct])
}

func TestBuildKeepsDistinctWordsSeparate(t *testing.T) {
	words := []dictionary.Entry{
		{Word: "cat", Score: 1},
		{Word: "dog", Score: 1},
	}
	perm := permute.Derive(words)

	table, _ := Build(words, perm)
	assert.Len(t, table.Spellings, 2)
}

func TestBuildDropsOverflowingWord(t *testing.T) {
	// Filler words push 'a'..'j' to the high-frequency (small-prime) slots,
	// leaving the rare word's 16 distinct letters ('k'..'z', each seen only
	// once) assigned the 16 largest primes: their product vastly exceeds a
	// uint64, so it must be dropped rather than silently wrapped.
	rareWord := "klmnopqrstuvwxyz"
	words := []dictionary.Entry{
		{Word: "aaaaaaaaaa", Score: 1},
		{Word: "bbbbbbbbbb", Score: 1},
		{Word: "cccccccccc", Score: 1},
		{Word: "dddddddddd", Score: 1},
		{Word: "eeeeeeeeee", Score: 1},
		{Word: "ffffffffff", Score: 1},
		{Word: "gggggggggg", Score: 1},
		{Word: "hhhhhhhhhh", Score: 1},
		{Word: "iiiiiiiiii", Score: 1},
		{Word: "jjjjjjjjjj", Score: 1},
		{Word: rareWord, Score: 1},
		{Word: "a", Score: 1},
	}
	perm := permute.Derive(words)

	table, overflowed := Build(words, perm)
	assert.Contains(t, overflowed, rareWord)
	for _, spellings := range table.Spellings {
		assert.NotContains(t, spellings, rareWord)
	}
	aProduct := Product(perm.PrimeOf['a'-'a'])
	assert.Contains(t, table.Spellings[aProduct], "a")
}
