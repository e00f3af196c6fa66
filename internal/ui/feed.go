package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vibra-app/vibra/internal/haptics"
	"github.com/vibra-app/vibra/internal/models"
	"github.com/vibra-app/vibra/internal/store"
)

const overlayDuration = 800 * time.Millisecond

// overlayClearedMsg retires the boost overlay. seq guards against a stale
// timer clearing a newer overlay: each boost bumps the sequence and only
// the matching tick wins.
type overlayClearedMsg struct {
	seq int
}

// FeedModel shows one full-height post panel at a time (snap paging). It
// reads the timeline owned by the root and keeps only viewer-local state:
// the liked set and the transient boost overlay.
type FeedModel struct {
	styles *Styles
	haptic *haptics.Engine
	posts  *store.Posts

	index      int
	liked      map[string]bool
	overlayID  string
	overlaySeq int

	width  int
	height int
}

func NewFeedModel(styles *Styles, haptic *haptics.Engine, posts *store.Posts) FeedModel {
	return FeedModel{
		styles: styles,
		haptic: haptic,
		posts:  posts,
		liked:  make(map[string]bool),
		width:  80,
		height: 24,
	}
}

// Liked reports the viewer's like state for a post.
func (m FeedModel) Liked(id string) bool {
	return m.liked[id]
}

// GotoTop snaps back to the newest post (used after a submission).
func (m FeedModel) GotoTop() FeedModel {
	m.index = 0
	return m
}

func (m FeedModel) Update(msg tea.Msg) (FeedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case overlayClearedMsg:
		if msg.seq == m.overlaySeq {
			m.overlayID = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.index < m.posts.Len()-1 {
				m.index++
			}
			return m, nil

		case "k", "up":
			if m.index > 0 {
				m.index--
			}
			return m, nil

		case "l":
			if post, ok := m.current(); ok {
				m = m.toggleLike(post.ID)
			}
			return m, nil

		case " ":
			if post, ok := m.current(); ok {
				return m.boost(post.ID)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m FeedModel) current() (models.Post, bool) {
	posts := m.posts.All()
	if m.index < 0 || m.index >= len(posts) {
		return models.Post{}, false
	}
	return posts[m.index], true
}

// toggleLike flips the viewer's like for a post. The feedback cue fires on
// the add half only; the stored count is never mutated.
func (m FeedModel) toggleLike(id string) FeedModel {
	if m.liked[id] {
		delete(m.liked, id)
		return m
	}
	m.liked[id] = true
	m.haptic.Trigger(haptics.Tap)
	return m
}

// boost is the double-tap gesture: like if not yet liked, then show the
// heart overlay and arm its one-shot clear timer. A newer boost re-targets
// the overlay and invalidates the pending timer.
func (m FeedModel) boost(id string) (FeedModel, tea.Cmd) {
	if !m.liked[id] {
		m = m.toggleLike(id)
	}
	m.overlayID = id
	m.overlaySeq++
	seq := m.overlaySeq
	m.haptic.Trigger(haptics.Tap)
	return m, tea.Tick(overlayDuration, func(time.Time) tea.Msg {
		return overlayClearedMsg{seq: seq}
	})
}

func (m FeedModel) View() string {
	posts := m.posts.All()
	if len(posts) == 0 {
		return m.styles.Muted.Render("  Akış boş.")
	}

	post := posts[m.index]
	panelWidth := m.width - 6
	if panelWidth < 20 {
		panelWidth = 20
	}

	var body strings.Builder

	author := m.styles.Selected.Render(post.Author.Handle)
	if post.Author.Verified {
		author += " " + m.styles.Accent.Render("⚡")
	}
	body.WriteString(author + "  " + m.styles.MessageHeader.Render(post.Time+" önce") + "\n\n")

	if post.Image != "" {
		body.WriteString(m.styles.Muted.Render("▓▓ "+post.Image) + "\n\n")
	}

	body.WriteString(m.styles.Normal.Render(wordwrap.String(post.Content, panelWidth-4)) + "\n\n")
	body.WriteString(m.styles.Accent.Render("#vibra") + " " + m.styles.Laser.Render("#future") + "\n")

	likes := post.Likes
	heart := "♡"
	if m.liked[post.ID] {
		likes++
		heart = m.styles.Laser.Render("♥")
	}
	body.WriteString(fmt.Sprintf("\n%s %d   %s %d",
		heart, likes,
		m.styles.Muted.Render("💬"), post.Comments,
	))

	if m.overlayID == post.ID {
		body.WriteString("\n\n" + lipgloss.NewStyle().
			Bold(true).
			Foreground(m.styles.Theme.Secondary).
			Render("        ♥ ♥ ♥        "))
	}

	// Text-only posts cycle the three gradient panels; image posts use the
	// plain card.
	panel := m.styles.Card.Width(panelWidth)
	if post.Image == "" {
		panel = m.styles.Gradients[m.index%3].Width(panelWidth)
	}

	s := panel.Render(body.String()) + "\n"
	s += m.styles.Help.Render(fmt.Sprintf("  %d/%d • j/k: kaydır • l: beğen • boşluk: boost", m.index+1, len(posts)))
	return s
}
