package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRadioToggles(t *testing.T) {
	m := NewRadioModel(testStyles())

	m = m.TogglePlaying()
	assert.True(t, m.Playing())
	m = m.TogglePlaying()
	assert.False(t, m.Playing())

	m = m.ToggleExpanded()
	assert.True(t, m.Expanded())
	m = m.ToggleExpanded()
	assert.False(t, m.Expanded())
}

func TestRadioExpandedShowsStation(t *testing.T) {
	m := NewRadioModel(testStyles()).ToggleExpanded().TogglePlaying()

	assert.Contains(t, m.View(80), "Cyberpunk Lo-Fi Radio")
}

func TestRadioCollapsedLineFitsWidth(t *testing.T) {
	m := NewRadioModel(testStyles())

	for _, width := range []int{20, 40, 80} {
		assert.LessOrEqual(t, lipgloss.Width(m.View(width)), width)
	}
}
