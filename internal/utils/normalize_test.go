package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripToLettersDropsNonLettersAndLowercases(t *testing.T) {
	assert.Equal(t, "dormitory", StripToLetters("Dor-mi_tory!!"))
	assert.Equal(t, "abc", StripToLetters("a b\tc\n"))
	assert.Equal(t, "", StripToLetters("123 !?"))
}

func TestRemoveLettersDeductsWithMultiplicity(t *testing.T) {
	residual, ok := RemoveLetters("hello", "ll")
	assert.True(t, ok)
	assert.Equal(t, "eho", residual)
}

func TestRemoveLettersFailsWhenWordDoesNotFit(t *testing.T) {
	residual, ok := RemoveLetters("hello", "zz")
	assert.False(t, ok)
	assert.Equal(t, "hello", residual)
}

func TestApplyIncludesRemovesEachIncludeInOrder(t *testing.T) {
	residual, ok := ApplyIncludes("the eat", []string{"the"})
	assert.True(t, ok)
	assert.Equal(t, "aet", residual)
}

func TestApplyIncludesFailsOnInfeasibleInclude(t *testing.T) {
	_, ok := ApplyIncludes("cat", []string{"dog"})
	assert.False(t, ok)
}
