package permute

import (
	"testing"

	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/stretchr/testify/assert"
)

func TestDeriveAssignsSmallestPrimesToMostFrequentLetters(t *testing.T) {
	words := []dictionary.Entry{
		{Word: "eee", Score: 1},
		{Word: "tt", Score: 1},
		{Word: "a", Score: 1},
	}
	p := Derive(words)

	assert.Equal(t, 0, p.SlotOf['e'-'a'])
	assert.Equal(t, 1, p.SlotOf['t'-'a'])
	assert.Equal(t, 2, p.SlotOf['a'-'a'])

	assert.Equal(t, uint64(2), p.PrimeOf['e'-'a'])
	assert.Equal(t, uint64(3), p.PrimeOf['t'-'a'])
	assert.Equal(t, uint64(5), p.PrimeOf['a'-'a'])
}

func TestDeriveBreaksFrequencyTiesAlphabetically(t *testing.T) {
	words := []dictionary.Entry{{Word: "ba", Score: 1}}
	p := Derive(words)

	assert.Equal(t, 0, p.SlotOf['a'-'a'])
	assert.Equal(t, 1, p.SlotOf['b'-'a'])
}

func TestDeriveIsAFullPermutation(t *testing.T) {
	p := Derive([]dictionary.Entry{{Word: "hello", Score: 1}})

	var seen [AlphaSize]bool
	for letter := 0; letter < AlphaSize; letter++ {
		slot := p.SlotOf[letter]
		assert.False(t, seen[slot], "slot %d assigned twice", slot)
		seen[slot] = true
		assert.Equal(t, Primes[slot], p.PrimeOf[letter])
	}
}

func TestCounterSumsToWordLength(t *testing.T) {
	words := []dictionary.Entry{{Word: "letter", Score: 1}}
	p := Derive(words)

	c := p.Counter("letter")
	total := 0
	for _, n := range c {
		total += int(n)
	}
	assert.Equal(t, len("letter"), total)
	assert.Equal(t, uint8(2), c[p.SlotOf['e'-'a']])
	assert.Equal(t, uint8(2), c[p.SlotOf['t'-'a']])
}
