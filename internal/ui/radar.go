package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibra-app/vibra/internal/haptics"
	"github.com/vibra-app/vibra/internal/models"
)

// RadarModel lists nearby announcements. The only state it owns is the
// viewer's joined set; toggling is purely local.
type RadarModel struct {
	styles        *Styles
	haptic        *haptics.Engine
	announcements []models.Announcement

	cursor int
	joined map[string]bool

	width  int
	height int
}

func NewRadarModel(styles *Styles, haptic *haptics.Engine, announcements []models.Announcement) RadarModel {
	return RadarModel{
		styles:        styles,
		haptic:        haptic,
		announcements: announcements,
		joined:        make(map[string]bool),
		width:         80,
		height:        24,
	}
}

// Joined reports whether the viewer joined an announcement.
func (m RadarModel) Joined(id string) bool {
	return m.joined[id]
}

func (m RadarModel) Update(msg tea.Msg) (RadarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.announcements)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.announcements) {
				m = m.toggleJoin(m.announcements[m.cursor].ID)
			}
		}
		return m, nil
	}

	return m, nil
}

// toggleJoin is a symmetric set toggle, independent per announcement.
func (m RadarModel) toggleJoin(id string) RadarModel {
	if m.joined[id] {
		delete(m.joined, id)
	} else {
		m.joined[id] = true
	}
	m.haptic.Trigger(haptics.Impact)
	return m
}

func (m RadarModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("📡 AKTİF BÖLGELER") + "\n")

	cardWidth := m.width - 8
	if cardWidth < 30 {
		cardWidth = 30
	}

	for i, item := range m.announcements {
		title := m.styles.Selected.Render(item.Title)
		if i == m.cursor {
			title = m.styles.Accent.Render("▸ ") + title
		}

		joinLabel := m.styles.Muted.Render("[ KATIL ]")
		card := m.styles.Card
		if m.joined[item.ID] {
			joinLabel = m.styles.Badge.Render("KATILDIN")
			card = m.styles.ActiveCard
		}

		line := fmt.Sprintf("%s %s  %s\n%s\n%s  %s",
			title,
			m.styles.Subtitle.Render(string(item.Category)),
			m.styles.Muted.Render(fmt.Sprintf("%.1f km", 0.8+float64(i)*0.5)),
			m.styles.Normal.Render(item.Description),
			m.styles.Accent.Render(item.Date),
			joinLabel,
		)

		b.WriteString(card.Width(cardWidth).Render(line) + "\n")
	}

	b.WriteString(m.styles.Help.Render("  ↑↓/jk: gez • enter: katıl/ayrıl"))
	return b.String()
}
