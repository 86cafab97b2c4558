/*
Package main implements the lexigram command line tool and IPC server.

lexigram enumerates multi-word anagrams of a phrase against an embedded,
frequency-ranked English dictionary. It can run as an interactive CLI for
local debugging, or as a msgpack IPC server for editor/browser-binding
integration.

# CLI Mode

Passing -c launches an interactive shell: type a phrase, see its ranked
anagrams and the filtered single-word candidates.

# Server Mode

Without -c, lexigram reads msgpack-encoded Solve requests from stdin and
writes msgpack-encoded responses to stdout, one per request.

# Config

In server mode, runtime configuration is read from a TOML file
(lexigram.toml by default, set with -config) holding solver defaults and
server limits; a default file is created if one does not exist. CLI mode
does not read the file: its flags default to the built-in CLI defaults.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/lexigram/internal/cli"
	"github.com/bastiangx/lexigram/internal/logger"
	"github.com/bastiangx/lexigram/pkg/config"
	"github.com/bastiangx/lexigram/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "lexigram"
	gh      = "https://github.com/bastiangx/lexigram"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "lexigram.toml", "Path to config.toml file")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI instead of the IPC server")
	minLength := flag.Int("min-length", defaultConfig.CLI.DefaultMinLength, "Minimum word length for CLI queries")
	maxWords := flag.Int("max-words", defaultConfig.CLI.DefaultMaxWords, "Maximum words per answer for CLI queries")
	topN := flag.Int("top-n", defaultConfig.CLI.DefaultTopN, "Dictionary truncation for CLI queries")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (debug only)")

	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Printf("[%s] Multi-word anagrams, ranked by frequency", AppName)
		banner.Print("", "version", Version)
		banner.Print("use --help to see available options")
		banner.Print("Find out more at", "gh", gh)
		banner.Print("")

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(*minLength, *maxWords, *topN, *noFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC server")

	cfg, err := config.InitConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	absPath, _ := filepath.Abs(*configFile)
	log.Debugf("Using config file: %s", absPath)

	srv := server.NewServer(cfg)

	showStartupInfo()

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

func showStartupInfo() {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" lexigram ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
