/*
Package dictionary holds the embedded, frequency-ranked word table lexigram
searches over and the per-query filtering pass that trims it down to a
query's candidate vocabulary.

# Store

Store parses the embedded `word<TAB>score` table once at process start into
an in-memory, already-sorted-by-score slice. This is the one piece of
process-wide state lexigram carries: it is read-only, never mutated by a
query, and shared freely across concurrent queries.

# Filtering

Filter takes a residual letter bag, a minimum word length, an exclude set and
a topN ceiling, and returns every entry that is alphanumeric, long enough,
a sub-multiset of the bag, and not excluded — in the same descending-score
order the embedded table was built in, which is what lets the caller treat
"first N filtered entries" as "N most frequent entries" without resorting.
*/
package dictionary

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed data/dictionary_counts.txt
var embeddedTable string

// Entry is a single dictionary row: a lowercase spelling and its opaque,
// offline-computed frequency score (higher is more frequent).
type Entry struct {
	Word  string
	Score int
}

// Store is the parsed, shared, read-only dictionary table.
type Store struct {
	entries []Entry
	byWord  map[string]int
}

var shared = mustParse(embeddedTable)

// Shared returns the process-wide Store parsed from the embedded table at
// process start.
func Shared() *Store {
	return shared
}

// mustParse parses the embedded dictionary text. A malformed score field is
// a fail-fast condition: the embedded asset is trusted, not user input.
func mustParse(text string) *Store {
	lines := strings.Split(text, "\n")
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			log.Fatalf("dictionary: malformed line %q: missing tab separator", line)
		}
		word := strings.ToLower(line[:tab])
		score, err := strconv.Atoi(line[tab+1:])
		if err != nil {
			log.Fatalf("dictionary: malformed score in line %q: %v", line, err)
		}
		entries = append(entries, Entry{Word: word, Score: score})
	}
	byWord := make(map[string]int, len(entries))
	for _, e := range entries {
		byWord[e.Word] = e.Score
	}
	return &Store{entries: entries, byWord: byWord}
}

// Len returns the total number of entries in the embedded table.
func (s *Store) Len() int {
	return len(s.entries)
}

// ScoreOf returns word's frequency score, or 0 when word is not in the
// table.
func (s *Store) ScoreOf(word string) int {
	return s.byWord[word]
}

// isAlphanumeric reports whether every rune in s is a letter or digit.
func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

// isSubMultiset reports whether word's letters all fit within bagCounts,
// elementwise, i.e. word is a sub-multiset of the bag.
func isSubMultiset(word string, bagCounts *[26]int) bool {
	var need [26]int
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
		need[r-'a']++
	}
	for i := 0; i < 26; i++ {
		if need[i] > bagCounts[i] {
			return false
		}
	}
	return true
}

// Filter truncates the embedded table to its first topN entries (all of them
// when topN <= 0) and returns those that pass length, bag-subset and exclude
// filtering, preserving descending score order.
func (s *Store) Filter(residualBag string, minLength int, excludes map[string]struct{}, topN int) []Entry {
	var bagCounts [26]int
	for _, r := range residualBag {
		bagCounts[r-'a']++
	}

	limit := topN
	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}

	out := make([]Entry, 0, limit/4+8)
	for i := 0; i < limit; i++ {
		e := s.entries[i]
		if len(e.Word) < minLength {
			continue
		}
		if !isAlphanumeric(e.Word) {
			continue
		}
		if _, excluded := excludes[e.Word]; excluded {
			continue
		}
		if !isSubMultiset(e.Word, &bagCounts) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// String implements fmt.Stringer for diagnostics.
func (e Entry) String() string {
	return fmt.Sprintf("%s(%d)", e.Word, e.Score)
}
