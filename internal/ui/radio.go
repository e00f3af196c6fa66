package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RadioModel is the ambient radio widget pinned above every view except the
// composer. Playback is a visual simulation; no audio hardware is touched.
type RadioModel struct {
	styles   *Styles
	expanded bool
	playing  bool
	frame    int
}

func NewRadioModel(styles *Styles) RadioModel {
	return RadioModel{styles: styles}
}

func (m RadioModel) ToggleExpanded() RadioModel {
	m.expanded = !m.expanded
	return m
}

func (m RadioModel) TogglePlaying() RadioModel {
	m.playing = !m.playing
	return m
}

func (m RadioModel) Playing() bool  { return m.playing }
func (m RadioModel) Expanded() bool { return m.expanded }

var equalizerFrames = []string{"▂▄▆▄▂", "▄▆▂▆▄", "▆▂▄▂▆"}

func (m RadioModel) View(width int) string {
	disc := m.styles.Muted.Render("◉")
	if m.playing {
		disc = m.styles.Accent.Render("◉")
	}

	var line string
	if m.expanded {
		bars := "▁▁▁▁▁"
		state := "durduruldu"
		if m.playing {
			bars = equalizerFrames[m.frame%len(equalizerFrames)]
			state = "CANLI: Cyberpunk Lo-Fi Radio"
		}
		line = disc + " " + m.styles.Accent.Render(bars) + " " + m.styles.Help.Render(state)
	} else {
		line = disc
	}

	pad := width - lipgloss.Width(line) - 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + line
}
