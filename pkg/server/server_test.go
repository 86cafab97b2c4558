package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWordsTrimsAndLowercases(t *testing.T) {
	got := normalizeWords([]string{" Hello ", "OLEH", "", "   "})
	assert.Equal(t, []string{"hello", "oleh"}, got)
}

func TestIntFieldCoercesWireNumberTypes(t *testing.T) {
	raw := map[string]interface{}{"a": int64(3), "b": float64(4), "c": "x"}
	assert.Equal(t, 3, intField(raw, "a", 9))
	assert.Equal(t, 4, intField(raw, "b", 9))
	assert.Equal(t, 9, intField(raw, "c", 9))
	assert.Equal(t, 9, intField(raw, "missing", 9))
}

func TestStringSliceFieldIgnoresNonStrings(t *testing.T) {
	raw := map[string]interface{}{"words": []interface{}{"a", 1, "b"}}
	assert.Equal(t, []string{"a", "b"}, stringSliceField(raw, "words"))
	assert.Nil(t, stringSliceField(raw, "missing"))
}
