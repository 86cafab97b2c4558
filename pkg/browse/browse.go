/*
Package browse builds an ephemeral prefix index over a single query's
partials (the filtered single-word candidates) so a host CLI or IPC server
can offer "words starting with..." lookups into that already-computed list
for UI display.

This is literal-prefix matching over results the solver has already
produced, not fuzzy matching or stemming over the dictionary itself, so it
does not reach back into the solver's Non-goals. The index is built fresh
per query and discarded with everything else.
*/
package browse

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is a radix trie over one query's partials, keyed by spelling with
// the word's frequency score as payload.
type Index struct {
	trie *patricia.Trie
}

// New builds an Index over words, pairing each with its score via scoreOf.
func New(words []string, scoreOf func(word string) int) *Index {
	idx := &Index{trie: patricia.NewTrie()}
	for _, w := range words {
		idx.trie.Insert(patricia.Prefix(w), scoreOf(w))
	}
	return idx
}

// Match is one prefix-lookup result.
type Match struct {
	Word  string
	Score int
}

// Lookup returns every partial beginning with prefix, sorted descending by
// score, ties broken alphabetically.
func (idx *Index) Lookup(prefix string) []Match {
	if idx == nil || idx.trie == nil {
		return nil
	}

	var matches []Match
	err := idx.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		score, ok := item.(int)
		if !ok {
			log.Errorf("browse: unexpected item type %T for word %q", item, p)
			return nil
		}
		matches = append(matches, Match{Word: string(p), Score: score})
		return nil
	})
	if err != nil {
		log.Errorf("browse: error visiting subtree for prefix %q: %v", prefix, err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Word < matches[j].Word
	})
	return matches
}
