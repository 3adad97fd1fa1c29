// Sokomaze is a deterministic, data-driven engine for crate-pushing maze
// puzzles.
// Usage: sokomaze [--version] [--plain] [--script <file>] [--level <id>] [--config <file>] <game_directory>
package main

import (
	"fmt"
	"os"

	"github.com/nathoo/sokomaze/cli"
	"github.com/nathoo/sokomaze/config"
	"github.com/nathoo/sokomaze/engine"
	"github.com/nathoo/sokomaze/loader"
	"github.com/nathoo/sokomaze/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var gameDir string
	var scriptFile string
	var levelID string
	var configFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("sokomaze %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--level":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--level requires a level id\n")
				os.Exit(1)
			}
			i++
			levelID = args[i]
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configFile = args[i]
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: sokomaze [--version] [--plain] [--script <file>] [--level <id>] [--config <file>] <game_directory>\n")
		os.Exit(1)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The flag outranks the config file.
	if levelID == "" {
		levelID = cfg.Level
	}

	// Load and compile Lua game content.
	defs, err := loader.Load(gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	if levelID != "" {
		if _, ok := defs.Levels[levelID]; !ok {
			fmt.Fprintf(os.Stderr, "Unknown level: %s\n", levelID)
			os.Exit(1)
		}
	}

	eng := engine.New(defs, levelID)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Printf("%s v%s\n\n", defs.Game.Title, defs.Game.Version)
		c := cli.New(eng, defs)
		c.In = f
		c.EchoInput = true
		c.SaveDir = cfg.SaveDir
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("%s v%s\n\n", defs.Game.Title, defs.Game.Version)
		c := cli.New(eng, defs)
		c.SaveDir = cfg.SaveDir
		c.Run()
		return
	}

	if err := tui.Run(eng, defs, cfg.SaveDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
