/*
Package solver wires the normalizer, dictionary store, letter permuter,
fingerprinter, counter trie and search engine into lexigram's single public
entry point, Solve.

Every structure Solve builds — the filtered word list, the fingerprint
table, the counter trie, the search engine's memo cache — is owned by that
one call and discarded on return; nothing but the shared, read-only
embedded dictionary survives across queries.
*/
package solver

import (
	"strings"

	"github.com/bastiangx/lexigram/internal/logger"
	"github.com/bastiangx/lexigram/internal/utils"
	"github.com/bastiangx/lexigram/pkg/countertrie"
	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/bastiangx/lexigram/pkg/fingerprint"
	"github.com/bastiangx/lexigram/pkg/permute"
	"github.com/bastiangx/lexigram/pkg/rank"
	"github.com/bastiangx/lexigram/pkg/search"
)

var log = logger.New("solver")

// Solve enumerates every ordered tuple of dictionary words whose combined
// letters equal seed's letter bag exactly, ranked by descending mean
// frequency score.
//
// seed is normalized internally (non-letters stripped, lowercased).
// minLength and maxWords bound each answer's words; excludes forbids words;
// includes are mandatory words prepended to every answer and deducted from
// the target bag before search; topN restricts the candidate vocabulary to
// the topN most-frequent dictionary entries (0 means unrestricted).
//
// anagrams is sorted descending by score; partials is the filtered
// single-word candidate list, for UI display. Both are nil, not an error,
// when includes cannot fit the bag or no candidate words remain. err is
// always nil: every failure condition this pipeline recognizes is either
// one of those empty-result cases or a fail-fast panic/log.Fatalf on an
// invariant violation, never a returned error.
func Solve(seed string, minLength, maxWords int, excludes map[string]struct{}, includes []string, topN int) (anagrams []string, partials []string, err error) {
	residual, ok := utils.ApplyIncludes(seed, includes)
	if !ok {
		return nil, nil, nil
	}

	store := dictionary.Shared()
	filtered := store.Filter(residual, minLength, excludes, topN)
	partials = make([]string, len(filtered))
	for i, e := range filtered {
		partials[i] = e.Word
	}

	if len(residual) == 0 {
		// The whole bag was consumed by includes: the only valid answer is
		// the includes tuple itself, no further words needed.
		if len(includes) > 0 {
			return []string{strings.Join(includes, " ")}, partials, nil
		}
		return nil, partials, nil
	}

	if len(filtered) == 0 {
		return nil, nil, nil
	}

	perm := permute.Derive(filtered)

	table, overflowed := fingerprint.Build(filtered, perm)
	if len(overflowed) > 0 {
		log.Debugf("dropped %d words whose fingerprint would overflow 64 bits: %v", len(overflowed), overflowed)
	}

	root := countertrie.New()
	for product, counter := range table.Counter {
		root.Insert(counter, product, 0)
	}
	root.Sort()

	remainingWords := maxWords - len(includes)
	if remainingWords < 1 {
		return nil, partials, nil
	}

	engine := search.NewEngine(root, table.Length, table.Counter, minLength, remainingWords)
	residualCounter := perm.Counter(residual)
	tuples := engine.Run(len(residual), residualCounter)

	anagrams = rank.Expand(tuples, table, includes)
	return anagrams, partials, nil
}
