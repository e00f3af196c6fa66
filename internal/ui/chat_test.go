package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibra-app/vibra/internal/store"
)

func seedChat() (ChatModel, *store.Chats) {
	chats := store.NewChats(store.SeedChatPreviews(), store.SeedChatHistories(), store.SeedReplies())
	return NewChatModel(testStyles(), silentHaptics(), chats), chats
}

func TestChatEnterOpensSelectedThread(t *testing.T) {
	m, _ := seedChat()
	require.False(t, m.InThread())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.InThread())
	assert.Equal(t, "c1", m.activeID)
}

func TestChatEscReturnsToList(t *testing.T) {
	m, _ := seedChat()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	assert.False(t, m.InThread())
	assert.Empty(t, m.input.Value())
}

func TestChatBlankSendChangesNothing(t *testing.T) {
	m, chats := seedChat()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	before := len(chats.Messages("c1"))

	m.input.SetValue("   ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, before, len(chats.Messages("c1")))
	assert.False(t, m.typing["c1"])
}

func TestChatSendAppendsAndArmsReply(t *testing.T) {
	m, chats := seedChat()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	before := len(chats.Messages("c1"))

	m.input.SetValue("selam!")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	history := chats.Messages("c1")
	require.Equal(t, before+1, len(history))
	assert.Equal(t, "selam!", history[len(history)-1].Text)
	assert.True(t, history[len(history)-1].IsMe)
	assert.Empty(t, m.input.Value())
	assert.True(t, m.typing["c1"])
	assert.NotNil(t, cmd, "reply timer must be armed")
}

func TestChatReplyLandsAfterLeavingThread(t *testing.T) {
	m, chats := seedChat()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("orada mısın?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Navigate back to the list before the timer fires.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.False(t, m.InThread())

	m, _ = m.Update(replyDueMsg{convID: "c1"})

	history := chats.Messages("c1")
	last := history[len(history)-1]
	assert.False(t, last.IsMe)
	assert.False(t, m.typing["c1"])
}

func TestChatReplyTargetsItsOwnConversation(t *testing.T) {
	m, chats := seedChat()
	otherBefore := len(chats.Messages("c2"))

	m, _ = m.Update(replyDueMsg{convID: "c1"})

	assert.Equal(t, otherBefore, len(chats.Messages("c2")))
}
