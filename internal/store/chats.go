package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vibra-app/vibra/internal/models"
)

const defaultReply = "Harika görünüyor! 🔥 Detayları konuşalım."

// Chats owns the conversation previews and the message history of every
// conversation, keyed by conversation id. Histories are append-only.
type Chats struct {
	previews  []models.ChatPreview
	histories map[string][]models.ChatMessage
	replies   map[string]string
}

// NewChats builds the conversation store. replies maps a conversation id to
// its counterpart's scripted reply line; conversations without an entry use
// a default line.
func NewChats(previews []models.ChatPreview, histories map[string][]models.ChatMessage, replies map[string]string) *Chats {
	h := make(map[string][]models.ChatMessage, len(histories))
	for id, msgs := range histories {
		h[id] = append([]models.ChatMessage(nil), msgs...)
	}
	if replies == nil {
		replies = map[string]string{}
	}
	return &Chats{
		previews:  append([]models.ChatPreview(nil), previews...),
		histories: h,
		replies:   replies,
	}
}

// Previews returns the conversation list rows in display order.
func (s *Chats) Previews() []models.ChatPreview {
	return s.previews
}

// Preview looks up one conversation row by id.
func (s *Chats) Preview(id string) (models.ChatPreview, bool) {
	for _, p := range s.previews {
		if p.ID == id {
			return p, true
		}
	}
	return models.ChatPreview{}, false
}

// Messages returns the history of one conversation in send order.
func (s *Chats) Messages(id string) []models.ChatMessage {
	return s.histories[id]
}

// AppendSelf validates and appends a message authored by the local user.
// Whitespace-only text leaves the history unchanged and returns false.
func (s *Chats) AppendSelf(id, text string) (models.ChatMessage, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, false
	}
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		SenderID:  models.LocalUserID,
		Text:      text,
		Timestamp: time.Now(),
		IsMe:      true,
	}
	s.histories[id] = append(s.histories[id], msg)
	return msg, true
}

// AppendReply appends the conversation counterpart's scripted reply. The
// append targets the store by conversation id, so a reply lands even when
// the thread is no longer on screen. Unknown conversations return false.
func (s *Chats) AppendReply(id string) (models.ChatMessage, bool) {
	preview, ok := s.Preview(id)
	if !ok {
		return models.ChatMessage{}, false
	}
	text := s.replies[id]
	if text == "" {
		text = defaultReply
	}
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		SenderID:  preview.User.ID,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.histories[id] = append(s.histories[id], msg)
	return msg, true
}
