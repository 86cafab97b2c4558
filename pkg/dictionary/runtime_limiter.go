package dictionary

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// RuntimeLimiter lets an IPC host adjust, at runtime, the default topN the
// server applies to requests that omit one. The dictionary itself stays
// fully resident; only the ceiling applied to it changes.
type RuntimeLimiter struct {
	store      *Store
	defaultTop int
	maxTop     int
	mu         sync.RWMutex
}

// NewRuntimeLimiter creates a limiter bounded by maxTop and starting at
// defaultTop.
func NewRuntimeLimiter(store *Store, defaultTop, maxTop int) *RuntimeLimiter {
	if defaultTop > maxTop {
		defaultTop = maxTop
	}
	return &RuntimeLimiter{store: store, defaultTop: defaultTop, maxTop: maxTop}
}

// DefaultTopN returns the currently configured default.
func (rl *RuntimeLimiter) DefaultTopN() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return rl.defaultTop
}

// SetDefaultTopN updates the default topN applied to requests that omit
// one. Rejects values outside [1, maxTop]; a value above the dictionary's
// total size is clamped to that size.
func (rl *RuntimeLimiter) SetDefaultTopN(topN int) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if topN < 1 {
		return fmt.Errorf("default top_n must be at least 1")
	}
	if topN > rl.maxTop {
		return fmt.Errorf("requested top_n %d exceeds server maximum %d", topN, rl.maxTop)
	}
	if topN > rl.store.Len() {
		topN = rl.store.Len()
	}
	log.Debugf("Updating default top_n: %d -> %d", rl.defaultTop, topN)
	rl.defaultTop = topN
	return nil
}

// SizeOption describes one selectable vocabulary size for a host UI.
type SizeOption struct {
	TopN      int
	WordLabel string
}

// SizeOptions returns a handful of representative vocabulary sizes a host
// might offer a user, capped by both maxTop and the dictionary's total size.
func (rl *RuntimeLimiter) SizeOptions() []SizeOption {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	ceiling := rl.maxTop
	if rl.store.Len() < ceiling {
		ceiling = rl.store.Len()
	}

	candidates := []int{5000, 20000, 50000, 100000, 200000}
	options := make([]SizeOption, 0, len(candidates)+1)
	for _, c := range candidates {
		if c > ceiling {
			break
		}
		options = append(options, SizeOption{TopN: c, WordLabel: fmt.Sprintf("%dK words", c/1000)})
	}
	if len(options) == 0 || options[len(options)-1].TopN != ceiling {
		options = append(options, SizeOption{TopN: ceiling, WordLabel: fmt.Sprintf("%dK words", ceiling/1000)})
	}
	return options
}
