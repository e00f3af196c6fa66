package ui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vibra-app/vibra/internal/ai"
	"github.com/vibra-app/vibra/internal/config"
	"github.com/vibra-app/vibra/internal/haptics"
	"github.com/vibra-app/vibra/internal/models"
	"github.com/vibra-app/vibra/internal/store"
)

func testStyles() *Styles {
	return NewStyles(ThemeNeon)
}

func silentHaptics() *haptics.Engine {
	return haptics.New(io.Discard, false)
}

// offlineClient has no API key, so every call short-circuits to its
// fallback string without touching the network.
func offlineClient() *ai.Client {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return ai.NewClient(nil, logger, "", "gemini-3-flash-preview", "http://127.0.0.1:1", time.Second)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRoot() RootModel {
	cfg := &config.Config{
		UserName:   "Test",
		UserHandle: "@test",
		Theme:      "neon",
	}
	return NewRootModel(cfg, offlineClient(), silentHaptics())
}

func rootUpdate(t *testing.T, m RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	rm, ok := updated.(RootModel)
	require.True(t, ok)
	return rm, cmd
}

func seedFeed() (FeedModel, *store.Posts) {
	local := models.User{ID: models.LocalUserID, Name: "Test", Handle: "@test"}
	posts := store.NewPosts(local, store.SeedPosts())
	return NewFeedModel(testStyles(), silentHaptics(), posts), posts
}
