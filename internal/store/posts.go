// Package store holds the in-memory application data: the post timeline,
// conversations with their per-conversation histories, and the announcement
// board. Nothing here touches disk or network; entities are created once
// and only ever appended (chat) or prepended (feed).
package store

import (
	"github.com/google/uuid"

	"github.com/vibra-app/vibra/internal/models"
)

// nowLabel is the display-time label stamped on freshly authored posts.
const nowLabel = "Şimdi"

// Posts owns the ordered post timeline. Newest post is always at index 0.
type Posts struct {
	local models.User
	posts []models.Post
}

// NewPosts builds a timeline seeded with the given posts, authored
// submissions are attributed to local.
func NewPosts(local models.User, seed []models.Post) *Posts {
	posts := make([]models.Post, len(seed))
	copy(posts, seed)
	return &Posts{local: local, posts: posts}
}

// All returns the timeline in display order.
func (s *Posts) All() []models.Post {
	return s.posts
}

func (s *Posts) Len() int {
	return len(s.posts)
}

// LocalUser returns the author used for submissions.
func (s *Posts) LocalUser() models.User {
	return s.local
}

// Submit creates a post with a fresh unique id, the local author, zero
// counters and a "now" label, and prepends it. Content validation (non-blank)
// is the composer's precondition, not enforced here.
func (s *Posts) Submit(content, image string) models.Post {
	post := models.Post{
		ID:      uuid.NewString(),
		Author:  s.local,
		Content: content,
		Image:   image,
		Time:    nowLabel,
	}
	s.posts = append([]models.Post{post}, s.posts...)
	return post
}
