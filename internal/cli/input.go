// Package cli implements the interactive REPL used to exercise the solver
// locally without going through the IPC server.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/lexigram/internal/utils"
	"github.com/bastiangx/lexigram/pkg/browse"
	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/bastiangx/lexigram/pkg/solver"
	"github.com/charmbracelet/log"
)

// InputHandler reads phrases from stdin and prints ranked anagrams and
// partials for each one, using a fixed minLength/maxWords/topN configured
// at startup.
type InputHandler struct {
	minLength    int
	maxWords     int
	topN         int
	noFilter     bool
	requestCount int
	// browser indexes the most recent query's partials for /prefix lookups.
	browser *browse.Index
}

// NewInputHandler builds an InputHandler with the given solver parameters.
func NewInputHandler(minLength, maxWords, topN int, noFilter bool) *InputHandler {
	return &InputHandler{
		minLength: minLength,
		maxWords:  maxWords,
		topN:      topN,
		noFilter:  noFilter,
	}
}

// Start begins the REPL loop: prompt, read a line, hand it to the solver,
// print results. Returns when stdin is closed or a read error occurs.
func (h *InputHandler) Start() error {
	log.Print("lexigram CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a phrase and press Enter to see its anagrams (Ctrl+C to exit)")
	log.Print("type /<prefix> to browse the last query's candidates:")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		phrase := strings.TrimSpace(line)
		if phrase == "" {
			continue
		}
		if strings.HasPrefix(phrase, "/") {
			h.handleBrowse(strings.TrimPrefix(phrase, "/"))
			continue
		}
		h.handleInput(phrase)
	}
}

// handleBrowse prints the last query's partials that begin with prefix,
// most frequent first.
func (h *InputHandler) handleBrowse(prefix string) {
	if h.browser == nil {
		log.Warn("No query to browse yet; type a phrase first")
		return
	}
	matches := h.browser.Lookup(strings.ToLower(prefix))
	if len(matches) == 0 {
		log.Warnf("No candidates start with '%s'", prefix)
		return
	}
	log.Printf("%d candidates start with '%s':", len(matches), prefix)
	for _, m := range matches {
		fmtScore := utils.FormatWithCommas(m.Score)
		log.Printf("  %-24s (score: %8s)", m.Word, fmtScore)
	}
}

// handleInput runs a single phrase through the solver and prints the
// ranked anagrams followed by the filtered partial list.
func (h *InputHandler) handleInput(phrase string) {
	h.requestCount++

	if !h.noFilter && !utils.IsValidQuery(phrase) {
		log.Warnf("No results found for phrase: '%s'", phrase)
		return
	}

	start := time.Now()
	anagrams, partials, _ := solver.Solve(phrase, h.minLength, h.maxWords, nil, nil, h.topN)
	elapsed := time.Since(start)

	log.Debugf("Took [ %v ] for phrase '%s'", elapsed, phrase)

	if len(anagrams) == 0 {
		log.Warnf("No anagrams found for phrase: '%s'", phrase)
	} else {
		log.Printf("Found %d anagrams for phrase '%s':", len(anagrams), phrase)
		for i, a := range anagrams {
			colored := fmt.Sprintf("\033[38;5;75m%s\033[0m", a)
			log.Printf("%2d. %s", i+1, colored)
		}
	}

	if len(partials) > 0 {
		store := dictionary.Shared()
		log.Printf("%d single-word candidates:", len(partials))
		for _, p := range partials {
			fmtScore := utils.FormatWithCommas(store.ScoreOf(p))
			fmt.Printf("  %-24s (score: %8s)\n", p, fmtScore)
		}
		h.browser = browse.New(partials, store.ScoreOf)
	} else {
		h.browser = nil
	}
}
