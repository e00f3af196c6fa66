package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibra-app/vibra/internal/models"
)

// viewSelectedMsg asks the root to change the active view.
type viewSelectedMsg struct {
	view models.View
}

func selectView(v models.View) tea.Cmd {
	return func() tea.Msg {
		return viewSelectedMsg{view: v}
	}
}

type dockEntry struct {
	key    string
	label  string
	view   models.View
	center bool
}

// DockModel is the floating navigation dock: a collapsed orb that expands
// into the menu. The center entry opens the composer and never counts as an
// active tab.
type DockModel struct {
	styles   *Styles
	expanded bool
	entries  []dockEntry
	width    int
}

func NewDockModel(styles *Styles) DockModel {
	return DockModel{
		styles: styles,
		entries: []dockEntry{
			{key: "1", label: "Akış", view: models.ViewFeed},
			{key: "2", label: "Radar", view: models.ViewRadar},
			{key: "3", label: "+ Oluştur", view: models.ViewCreate, center: true},
			{key: "4", label: "Asistan", view: models.ViewSpark},
			{key: "5", label: "Kimlik", view: models.ViewProfile},
		},
	}
}

func (m DockModel) Expanded() bool { return m.expanded }

func (m DockModel) Toggle() DockModel {
	m.expanded = !m.expanded
	return m
}

func (m DockModel) Collapse() DockModel {
	m.expanded = false
	return m
}

// HandleKey consumes one key while the dock is expanded. A menu key selects
// its entry and collapses; every other key is "tapping outside" and just
// collapses.
func (m DockModel) HandleKey(msg tea.KeyMsg) (DockModel, tea.Cmd) {
	for _, entry := range m.entries {
		if msg.String() == entry.key {
			m.expanded = false
			return m, selectView(entry.view)
		}
	}
	m.expanded = false
	return m, nil
}

// View renders the dock line. Active emphasis is derived from activeView at
// render time; the chat affordance is appended unless the chat view itself
// is open (the composer never renders the dock at all).
func (m DockModel) View(activeView models.View) string {
	var b strings.Builder

	if m.expanded {
		parts := make([]string, 0, len(m.entries))
		for _, entry := range m.entries {
			label := "[" + entry.key + "] " + entry.label
			switch {
			case entry.center:
				parts = append(parts, m.styles.Badge.Render(label))
			case entry.view == activeView:
				parts = append(parts, m.styles.Selected.Render(label))
			default:
				parts = append(parts, m.styles.Muted.Render(label))
			}
		}
		b.WriteString("  " + strings.Join(parts, "  "))
	} else {
		b.WriteString("  " + m.styles.Accent.Render("● vibra") +
			m.styles.Help.Render("  n: menü"))
	}

	if activeView != models.ViewChat {
		b.WriteString("   " + m.styles.Laser.Render("✉") +
			m.styles.Help.Render(" m: mesajlar"))
	}

	return b.String()
}
