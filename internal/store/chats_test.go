package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibra-app/vibra/internal/models"
)

func seededChats() *Chats {
	return NewChats(SeedChatPreviews(), SeedChatHistories(), SeedReplies())
}

func TestAppendSelfRejectsBlankText(t *testing.T) {
	s := seededChats()
	before := len(s.Messages("c1"))

	for _, text := range []string{"", "   ", "\t\n"} {
		_, ok := s.AppendSelf("c1", text)
		assert.False(t, ok, "text %q should be rejected", text)
	}

	assert.Equal(t, before, len(s.Messages("c1")))
}

func TestAppendSelfAppendsLocalMessage(t *testing.T) {
	s := seededChats()
	before := len(s.Messages("c1"))

	msg, ok := s.AppendSelf("c1", "  selam  ")
	require.True(t, ok)

	history := s.Messages("c1")
	assert.Equal(t, before+1, len(history))
	assert.Equal(t, msg.ID, history[len(history)-1].ID)
	assert.Equal(t, "selam", msg.Text)
	assert.True(t, msg.IsMe)
	assert.Equal(t, models.LocalUserID, msg.SenderID)
}

func TestAppendReplyUsesCounterpartSender(t *testing.T) {
	s := seededChats()

	msg, ok := s.AppendReply("c1")
	require.True(t, ok)

	assert.False(t, msg.IsMe)
	assert.Equal(t, "u2", msg.SenderID)
	assert.Equal(t, "Harika görünüyor! 🔥 Detayları konuşalım.", msg.Text)
}

func TestAppendReplyUnknownConversation(t *testing.T) {
	s := seededChats()

	_, ok := s.AppendReply("nope")
	assert.False(t, ok)
}

func TestAppendReplyFallsBackToDefaultLine(t *testing.T) {
	previews := []models.ChatPreview{{ID: "x1", User: models.User{ID: "u9", Name: "Test"}}}
	s := NewChats(previews, nil, nil)

	msg, ok := s.AppendReply("x1")
	require.True(t, ok)
	assert.Equal(t, defaultReply, msg.Text)
}

func TestHistoriesAreKeyedPerConversation(t *testing.T) {
	s := seededChats()

	require.NotEmpty(t, s.Messages("c1"))
	require.NotEmpty(t, s.Messages("c3"))
	assert.NotEqual(t, s.Messages("c1")[0].Text, s.Messages("c3")[0].Text)

	s.AppendSelf("c1", "sadece c1")
	assert.NotContains(t, textsOf(s.Messages("c3")), "sadece c1")
}

func TestMessagesPreserveSendOrder(t *testing.T) {
	s := seededChats()

	first, _ := s.AppendSelf("c2", "bir")
	second, _ := s.AppendSelf("c2", "iki")
	reply, _ := s.AppendReply("c2")

	history := s.Messages("c2")
	n := len(history)
	require.GreaterOrEqual(t, n, 3)
	assert.Equal(t, first.ID, history[n-3].ID)
	assert.Equal(t, second.ID, history[n-2].ID)
	assert.Equal(t, reply.ID, history[n-1].ID)
}

func textsOf(msgs []models.ChatMessage) []string {
	texts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		texts = append(texts, m.Text)
	}
	return texts
}
