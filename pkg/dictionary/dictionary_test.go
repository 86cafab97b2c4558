package dictionary

import "testing"

func TestSharedParsesEmbeddedTable(t *testing.T) {
	s := Shared()
	if s.Len() == 0 {
		t.Fatal("expected embedded dictionary to contain entries")
	}
	// scores should be non-increasing, since the embedded table is sorted
	// descending by score and Filter relies on that ordering.
	for i := 1; i < s.Len(); i++ {
		if s.entries[i].Score > s.entries[i-1].Score {
			t.Fatalf("entries not sorted descending at index %d: %d > %d", i, s.entries[i].Score, s.entries[i-1].Score)
		}
	}
}

func TestFilterRespectsLengthBagAndExcludes(t *testing.T) {
	s := Shared()
	excludes := map[string]struct{}{"silent": {}}

	entries := s.Filter("eilnst", 3, excludes, 0)
	for _, e := range entries {
		if len(e.Word) < 3 {
			t.Errorf("entry %q shorter than min length", e.Word)
		}
		if e.Word == "silent" {
			t.Errorf("excluded word %q present in filtered results", e.Word)
		}
		if !isSubMultiset(e.Word, bagCountsOf("eilnst")) {
			t.Errorf("entry %q is not a sub-multiset of the bag", e.Word)
		}
	}
}

func TestFilterTopNTruncation(t *testing.T) {
	s := Shared()
	all := s.Filter("abcdefghijklmnopqrstuvwxyz", 1, nil, 0)
	few := s.Filter("abcdefghijklmnopqrstuvwxyz", 1, nil, 5)
	if len(few) > 5 {
		t.Fatalf("expected at most 5 filtered words from top_n=5, got %d", len(few))
	}
	if len(all) < len(few) {
		t.Fatalf("unrestricted filter should not be smaller than the top_n=5 filter")
	}
}

func bagCountsOf(bag string) *[26]int {
	var c [26]int
	for _, r := range bag {
		c[r-'a']++
	}
	return &c
}
