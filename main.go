package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibra-app/vibra/internal/ai"
	"github.com/vibra-app/vibra/internal/config"
	"github.com/vibra-app/vibra/internal/haptics"
	"github.com/vibra-app/vibra/internal/logger"
	"github.com/vibra-app/vibra/internal/ui"
)

const version = "1.0.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "-v", "--version":
			fmt.Printf("Vibra v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		default:
			fmt.Printf("Unknown command: %s\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to ~/.vibra/vibra.log.
	if err := os.MkdirAll(filepath.Dir(config.LogPath()), 0755); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(config.LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := logger.Setup(logFile)
	logger.SetupDefault(logFile)

	client := ai.NewClient(http.DefaultClient, log, cfg.APIKey, cfg.Model, cfg.Endpoint, cfg.RequestTimeout)
	haptic := haptics.New(os.Stderr, cfg.Haptics)

	initialModel := ui.NewRootModel(cfg, client, haptic)
	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `Vibra - Terminal Social Feed

Usage:
  vibra              Start the app
  vibra version      Show version information
  vibra help         Show this help message

Navigation:
  n                 Open/close the navigation dock
  1-5               Pick a dock entry while the dock is open
  m                 Jump to messages
  q                 Quit
  ctrl+c            Force quit

Feed:
  ↑/↓ or j/k        Previous/next post
  l                 Like
  space             Boost (double-tap)

Messages:
  enter             Open conversation / send message
  esc               Back to the conversation list

Radar:
  ↑/↓ or j/k        Navigate events
  enter             Join/leave

Assistant:
  enter             Ask
  1-4               Suggestion chips (empty state)
  esc / i           Leave/enter the input

Profile:
  c                 Connect toggle
  1/2/3             Theme preset (neon / cyber / void)

Composer:
  ctrl+s            Share post
  ctrl+e            Rewrite the caption with AI
  ctrl+o / ctrl+x   Add/remove media
  esc               Discard

Radio:
  R                 Expand/collapse the radio widget
  P                 Play/pause

Configuration:
  ~/.vibra/config.yml holds the Gemini API key, theme and identity.
  Environment overrides use the VIBRA_ prefix (e.g. VIBRA_API_KEY).

Notes:
  - All feed/chat/radar data is in-memory demo content.
  - Without an API key the assistant degrades to offline fallback replies.
`
	fmt.Print(help)
}
