package server

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/lexigram/pkg/config"
	"github.com/bastiangx/lexigram/pkg/dictionary"
	"github.com/bastiangx/lexigram/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles Solve requests and dictionary-limit adjustments over
// msgpack on stdin/stdout.
type Server struct {
	config  *config.Config
	limiter *dictionary.RuntimeLimiter

	decoder    *msgpack.Decoder
	writeMutex sync.Mutex
}

// NewServer creates a Server bound to cfg and a RuntimeLimiter seeded with
// cfg's solver default top_n and server maximum top_n.
func NewServer(cfg *config.Config) *Server {
	limiter := dictionary.NewRuntimeLimiter(dictionary.Shared(), cfg.Solver.TopN, cfg.Server.MaxTopN)
	return &Server{
		config:  cfg,
		limiter: limiter,
		decoder: msgpack.NewDecoder(os.Stdin),
	}
}

// Start begins the request/response loop. Returns nil on client disconnect,
// otherwise keeps processing requests until the process is stopped.
func (s *Server) Start() error {
	log.Debug("Starting msgpack solve server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("Client disconnected")
				return nil
			}
			continue
		}
	}
}

func (s *Server) processRequest() error {
	var raw map[string]interface{}
	log.Debug("Waiting for request...")
	if err := s.decoder.Decode(&raw); err != nil {
		log.Debugf("Decode error: %v", err)
		return err
	}

	if action, exists := raw["action"]; exists {
		actionStr, _ := action.(string)
		return s.processDictionaryRequest(raw, actionStr)
	}

	return s.processSolveRequest(raw)
}

func (s *Server) processSolveRequest(raw map[string]interface{}) error {
	var req SolveRequest
	if id, ok := raw["id"].(string); ok {
		req.ID = id
	}
	if seed, ok := raw["seed"].(string); ok {
		req.Seed = seed
	}
	req.MinLen = intField(raw, "min_len", s.config.Solver.MinLength)
	req.MaxWords = intField(raw, "max_words", s.config.Solver.MaxWords)
	req.TopN = intField(raw, "top_n", s.limiter.DefaultTopN())
	// hosts send excludes/includes as typed by a user; the dictionary and
	// answer prefixes are lowercase, so normalize before they reach the
	// solver.
	req.Excludes = normalizeWords(stringSliceField(raw, "excludes"))
	req.Includes = normalizeWords(stringSliceField(raw, "includes"))

	log.Debugf("solve request: seed=%q min_len=%d max_words=%d top_n=%d", req.Seed, req.MinLen, req.MaxWords, req.TopN)

	if req.Seed == "" {
		return s.sendError(req.ID, "empty seed", 400)
	}
	if req.MaxWords > s.config.Server.MaxMaxWords {
		req.MaxWords = s.config.Server.MaxMaxWords
	}
	if req.TopN > s.config.Server.MaxTopN {
		req.TopN = s.config.Server.MaxTopN
	}
	if len(req.Seed) > s.config.Server.MaxSeedChars {
		return s.sendError(req.ID, fmt.Sprintf("seed too long (max: %d)", s.config.Server.MaxSeedChars), 400)
	}

	excludeSet := make(map[string]struct{}, len(req.Excludes))
	for _, w := range req.Excludes {
		excludeSet[w] = struct{}{}
	}

	start := time.Now()
	anagrams, partials, _ := solver.Solve(req.Seed, req.MinLen, req.MaxWords, excludeSet, req.Includes, req.TopN)
	elapsed := time.Since(start)

	return s.sendResponse(&SolveResponse{
		ID:        req.ID,
		Anagrams:  anagrams,
		Partials:  partials,
		Count:     len(anagrams),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) processDictionaryRequest(raw map[string]interface{}, action string) error {
	var id string
	if rawID, ok := raw["id"]; ok {
		id, _ = rawID.(string)
	}

	log.Debugf("dictionary request: action=%s", action)

	switch action {
	case "get_info":
		return s.sendResponse(&DictionaryResponse{ID: id, Status: "ok", DefaultTop: s.limiter.DefaultTopN()})

	case "get_options":
		opts := s.limiter.SizeOptions()
		out := make([]DictionarySizeOption, len(opts))
		for i, o := range opts {
			out[i] = DictionarySizeOption{TopN: o.TopN, WordLabel: o.WordLabel}
		}
		return s.sendResponse(&DictionaryResponse{ID: id, Status: "ok", Options: out})

	case "set_default_top_n":
		topN := intField(raw, "top_n", -1)
		if topN < 0 {
			return s.sendResponse(&DictionaryResponse{ID: id, Status: "error", Error: "top_n required for set_default_top_n"})
		}
		if err := s.limiter.SetDefaultTopN(topN); err != nil {
			return s.sendResponse(&DictionaryResponse{ID: id, Status: "error", Error: err.Error()})
		}
		return s.sendResponse(&DictionaryResponse{ID: id, Status: "ok", DefaultTop: s.limiter.DefaultTopN()})

	default:
		return s.sendResponse(&DictionaryResponse{ID: id, Status: "error", Error: fmt.Sprintf("unknown action: %s", action)})
	}
}

// sendResponse encodes response to a buffer and writes it atomically to
// stdout, so a partial write never corrupts a message boundary.
func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.sendResponse(&SolveError{ID: id, Error: message, Code: code})
}

func intField(raw map[string]interface{}, key string, fallback int) int {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}

// normalizeWords trims and lowercases each word, dropping entries that are
// empty after trimming.
func normalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

func stringSliceField(raw map[string]interface{}, key string) []string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
