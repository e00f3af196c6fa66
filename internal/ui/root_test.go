package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibra-app/vibra/internal/models"
)

func TestRootStartsOnFeed(t *testing.T) {
	m := testRoot()
	assert.Equal(t, models.ViewFeed, m.ActiveView())
}

func TestRootViewSelection(t *testing.T) {
	m := testRoot()

	for _, view := range []models.View{
		models.ViewRadar,
		models.ViewSpark,
		models.ViewProfile,
		models.ViewChat,
		models.ViewFeed,
	} {
		m, _ = rootUpdate(t, m, viewSelectedMsg{view: view})
		assert.Equal(t, view, m.ActiveView())

		// Re-selecting the active view is a no-op.
		m, _ = rootUpdate(t, m, viewSelectedMsg{view: view})
		assert.Equal(t, view, m.ActiveView())
	}
}

func TestRootUnknownViewRendersFeed(t *testing.T) {
	m := testRoot()
	m.view = models.View(99)

	assert.Equal(t, m.feed.View(), m.viewContent())
}

func TestRootComposerIsModalTakeover(t *testing.T) {
	m := testRoot()
	m, _ = rootUpdate(t, m, viewSelectedMsg{view: models.ViewCreate})

	out := m.View()
	assert.Contains(t, out, "Yeni Vibe")
	assert.NotContains(t, out, "n: menü", "dock must not render under the composer")
	assert.NotContains(t, out, "◉", "radio must not render under the composer")
}

func TestRootSubmitPrependsAndReturnsToFeed(t *testing.T) {
	m := testRoot()
	m, _ = rootUpdate(t, m, viewSelectedMsg{view: models.ViewCreate})
	before := m.Posts().Len()

	m, _ = rootUpdate(t, m, postSubmittedMsg{content: "hello", image: ""})

	assert.Equal(t, before+1, m.Posts().Len())
	assert.Equal(t, "hello", m.Posts().All()[0].Content)
	assert.Equal(t, models.LocalUserID, m.Posts().All()[0].Author.ID)
	assert.Equal(t, models.ViewFeed, m.ActiveView())
	assert.Empty(t, m.create.textarea.Value(), "composer must reset after submit")
}

func TestRootCancelDiscardsDraft(t *testing.T) {
	m := testRoot()
	m, _ = rootUpdate(t, m, viewSelectedMsg{view: models.ViewCreate})
	m.create.textarea.SetValue("yarım taslak")
	before := m.Posts().Len()

	m, _ = rootUpdate(t, m, createCancelledMsg{})

	assert.Equal(t, before, m.Posts().Len())
	assert.Equal(t, models.ViewFeed, m.ActiveView())
	assert.Empty(t, m.create.textarea.Value())
}

func TestRootChatAffordanceKey(t *testing.T) {
	m := testRoot()

	m, _ = rootUpdate(t, m, keyRunes("m"))

	assert.Equal(t, models.ViewChat, m.ActiveView())
}

func TestRootDockSelectionRoundTrip(t *testing.T) {
	m := testRoot()

	m, _ = rootUpdate(t, m, keyRunes("n"))
	require.True(t, m.dock.Expanded())

	m, cmd := rootUpdate(t, m, keyRunes("5"))
	require.NotNil(t, cmd)
	assert.False(t, m.dock.Expanded())

	m, _ = rootUpdate(t, m, cmd())
	assert.Equal(t, models.ViewProfile, m.ActiveView())
}

func TestRootExpandedDockSwallowsOtherKeys(t *testing.T) {
	m := testRoot()
	m, _ = rootUpdate(t, m, keyRunes("n"))

	m, _ = rootUpdate(t, m, keyRunes("z"))

	assert.False(t, m.dock.Expanded())
	assert.Equal(t, models.ViewFeed, m.ActiveView())
}

func TestRootQuitKeys(t *testing.T) {
	m := testRoot()

	_, cmd := rootUpdate(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = rootUpdate(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootQuitKeyTypedInsideThread(t *testing.T) {
	m := testRoot()
	m, _ = rootUpdate(t, m, keyRunes("m"))
	m, _ = rootUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.chat.InThread())

	m, _ = rootUpdate(t, m, keyRunes("q"))

	assert.Equal(t, "q", m.chat.input.Value())
}

func TestRootThemeChangeAppliesToSharedStyles(t *testing.T) {
	m := testRoot()
	m, _ = rootUpdate(t, m, viewSelectedMsg{view: models.ViewProfile})

	m, cmd := rootUpdate(t, m, keyRunes("2"))
	require.NotNil(t, cmd)
	m, _ = rootUpdate(t, m, cmd())

	assert.Equal(t, "cyber", m.styles.Theme.Name)
}

func TestRootRoutesReplyWhileOnFeed(t *testing.T) {
	m := testRoot()
	before := len(m.chat.chats.Messages("c1"))

	m, _ = rootUpdate(t, m, replyDueMsg{convID: "c1"})

	history := m.chat.chats.Messages("c1")
	require.Equal(t, before+1, len(history))
	assert.False(t, history[len(history)-1].IsMe)
}

func TestRootWindowSizePropagation(t *testing.T) {
	m := testRoot()

	m, _ = rootUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	// One line each for the radio and the dock.
	assert.Equal(t, 38, m.feed.height)
}
