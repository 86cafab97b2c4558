/*
Package main implements lexiprep, the offline tool that builds
dictionary_counts.txt from a Google-Books-1gram archive and a plain word
list. It is a separate binary from lexigram: it runs once, offline, to
produce the data the solver embeds, and has no runtime role in answering a
query.
*/
package main

import (
	"flag"
	"os"

	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/bastiangx/lexigram/pkg/dictprep"
	"github.com/charmbracelet/log"
)

func main() {
	oneGramDir := flag.String("onegrams", "data/1grams", "Directory of gzip-compressed Google-Books-1gram files")
	wordListPath := flag.String("wordlist", "data/words.txt", "Plain word list, one word per line")
	outPath := flag.String("out", "data/dictionary_counts.txt", "Output path for the word<TAB>score table")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}

	log.Infof("aggregating 1grams from %s", *oneGramDir)
	totals, err := dictprep.AggregateOneGrams(*oneGramDir)
	if err != nil {
		log.Fatalf("aggregation failed: %v", err)
	}
	totals = dictprep.FilterAlphabetic(totals)
	log.Infof("aggregated %d distinct words", len(totals))

	wordList, err := os.Open(*wordListPath)
	if err != nil {
		log.Fatalf("failed to open word list %s: %v", *wordListPath, err)
	}
	defer wordList.Close()

	scored, err := dictprep.AssignScores(wordList, totals)
	if err != nil {
		log.Fatalf("scoring failed: %v", err)
	}
	log.Infof("scored %d dictionary words", len(scored))

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *outPath, err)
	}
	if err := dictprep.WriteCountsTable(out, scored); err != nil {
		out.Close()
		log.Fatalf("failed to write %s: %v", *outPath, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("failed to close %s: %v", *outPath, err)
	}

	// spot-check the first lines of the table with the solver parser's
	// tab/score checks before trusting the run.
	if err := dictionary.ValidateCountsFile(*outPath); err != nil {
		log.Fatalf("%s failed validation: %v", *outPath, err)
	}
	log.Infof("wrote %s", *outPath)
}
