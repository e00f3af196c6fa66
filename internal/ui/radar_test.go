package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vibra-app/vibra/internal/store"
)

func newRadar() RadarModel {
	return NewRadarModel(testStyles(), silentHaptics(), store.SeedAnnouncements())
}

func TestRadarJoinToggleIsSelfInverse(t *testing.T) {
	m := newRadar()
	id := store.SeedAnnouncements()[0].ID

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Joined(id))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Joined(id))
}

func TestRadarJoinsAreIndependent(t *testing.T) {
	m := newRadar()
	items := store.SeedAnnouncements()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Joined(items[0].ID))
	assert.True(t, m.Joined(items[1].ID))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Joined(items[0].ID), "leaving one must not affect another")
	assert.False(t, m.Joined(items[1].ID))
}

func TestRadarCursorClampsAtEdges(t *testing.T) {
	m := newRadar()
	n := len(store.SeedAnnouncements())

	m, _ = m.Update(keyRunes("k"))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < n+2; i++ {
		m, _ = m.Update(keyRunes("j"))
	}
	assert.Equal(t, n-1, m.cursor)
}
