/*
Package dictprep implements the offline frequency-building pipeline lexigram
ships as a separate tool: it aggregates Google-Books-1gram-format archives
into per-word occurrence counts, then joins those counts against a plain
word list to emit the `word<TAB>score` table the solver embeds.

This is deliberately outside the solver core (pkg/solver never imports it):
it runs once, offline, to produce data/dictionary_counts.txt, and has no
role in answering a query.
*/
package dictprep

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// defaultCount is the occurrence count assigned to a dictionary word never
// seen in the n-gram corpus.
const defaultCount = 40

// AggregateOneGrams reads every gzip-compressed Google-Books-1gram file
// under dir (lines shaped `word<TAB>year,count,volumes...`), sums each
// word's count across all years and files, and returns a word-to-total-count
// map. Year buckets with unparsable counts are skipped (the rest of the
// line still counts) rather than aborting the whole aggregation, since a single corrupt year-bucket in a multi-GB
// archive should not sink the run.
func AggregateOneGrams(dir string) (map[string]uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dictprep: reading %s: %w", dir, err)
	}

	totals := make(map[string]uint64)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gz") {
			continue
		}
		path := dir + "/" + entry.Name()
		if err := aggregateFile(path, totals); err != nil {
			return nil, err
		}
		log.Debugf("dictprep: aggregated %s", path)
	}
	return totals, nil
}

func aggregateFile(path string, totals map[string]uint64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dictprep: opening %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("dictprep: gunzip %s: %w", path, err)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		word, total, ok := parseOneGramLine(scanner.Text())
		if !ok {
			continue
		}
		totals[word] += total
	}
	return scanner.Err()
}

// parseOneGramLine parses one `word<TAB>year,count,volumes ...` line into
// its word and the sum of its count field across every year bucket.
func parseOneGramLine(line string) (word string, total uint64, ok bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return "", 0, false
	}
	word = fields[0]
	for _, bucket := range fields[1:] {
		parts := strings.Split(bucket, ",")
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}
		total += count
	}
	return word, total, true
}

// FilterAlphabetic keeps only alphabetic words from totals, lowercases
// them, and sums counts that collide after lowercasing (e.g. "The" and
// "the").
func FilterAlphabetic(totals map[string]uint64) map[string]uint64 {
	filtered := make(map[string]uint64, len(totals))
	for word, count := range totals {
		if !isAllAlphabetic(word) {
			continue
		}
		filtered[strings.ToLower(word)] += count
	}
	return filtered
}

func isAllAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// AssignScores joins wordList (one word per line) against counts, falling
// back to defaultCount for unseen words, and computes each word's score as
// round(log2(count/defaultCount) * 100). The solver treats the score as an
// opaque ranking key. The returned slice is sorted descending by score,
// the ordering the embedded table requires.
func AssignScores(wordList io.Reader, counts map[string]uint64) ([]ScoredWord, error) {
	scanner := bufio.NewScanner(wordList)
	var scored []ScoredWord
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		count, ok := counts[word]
		if !ok {
			count = defaultCount
		}
		freq := float64(count) / float64(defaultCount)
		score := int(math.Round(math.Log2(freq) * 100))
		scored = append(scored, ScoredWord{Word: word, Score: score})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictprep: reading word list: %w", err)
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored, nil
}

// ScoredWord is one row of the dictionary table this pipeline emits.
type ScoredWord struct {
	Word  string
	Score int
}

// WriteCountsTable writes scored as `word<TAB>score` lines to w, in the
// order given (the caller is expected to have already sorted it).
func WriteCountsTable(w io.Writer, scored []ScoredWord) error {
	buf := bufio.NewWriter(w)
	for _, sw := range scored {
		if _, err := fmt.Fprintf(buf, "%s\t%d\n", sw.Word, sw.Score); err != nil {
			return err
		}
	}
	return buf.Flush()
}
