package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibra-app/vibra/internal/haptics"
	"github.com/vibra-app/vibra/internal/models"
)

// themeSelectedMsg asks the root to rebuild the shared styles. Only the
// profile view emits it; no other surface may write the theme.
type themeSelectedMsg struct {
	theme Theme
}

// ProfileModel shows the local identity card, the connect toggle (purely
// cosmetic) and the theme presets.
type ProfileModel struct {
	styles *Styles
	haptic *haptics.Engine
	user   models.User

	connected bool

	width  int
	height int
}

func NewProfileModel(styles *Styles, haptic *haptics.Engine, user models.User) ProfileModel {
	return ProfileModel{
		styles: styles,
		haptic: haptic,
		user:   user,
		width:  80,
		height: 24,
	}
}

func (m ProfileModel) Connected() bool { return m.connected }

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m.connected = !m.connected
			m.haptic.Trigger(haptics.Impact)
			return m, nil

		case "1":
			return m.selectTheme(ThemeNeon)
		case "2":
			return m.selectTheme(ThemeCyber)
		case "3":
			return m.selectTheme(ThemeVoid)
		}
	}

	return m, nil
}

func (m ProfileModel) selectTheme(theme Theme) (ProfileModel, tea.Cmd) {
	m.haptic.Trigger(haptics.Tap)
	return m, func() tea.Msg {
		return themeSelectedMsg{theme: theme}
	}
}

func (m ProfileModel) View() string {
	var b strings.Builder

	cardWidth := m.width - 8
	if cardWidth < 30 {
		cardWidth = 30
	}

	var card strings.Builder
	card.WriteString(m.styles.Title.Render(m.user.Name) + "\n")
	card.WriteString(m.styles.Accent.Render(m.user.Handle) + "  " + m.styles.Badge.Render("LVL 99") + "\n\n")
	card.WriteString(m.styles.Muted.Render("Dijital Sanatçı 🎨 | Geleceği piksel piksel işliyoruz. | #cyberpunk") + "\n\n")
	card.WriteString(m.styles.Normal.Render("1.2K") + m.styles.Subtitle.Render(" Takipçi   ") +
		m.styles.Normal.Render("450") + m.styles.Subtitle.Render(" Takip   ") +
		m.styles.Normal.Render("9.9") + m.styles.Subtitle.Render(" Vibe Puan") + "\n\n")

	if m.connected {
		card.WriteString(m.styles.Selected.Render("✓ BAĞLANDIN"))
	} else {
		card.WriteString(m.styles.Laser.Render("⚡ BAĞLANTI KUR"))
	}

	b.WriteString(m.styles.ActiveCard.Width(cardWidth).Render(card.String()) + "\n\n")

	b.WriteString(m.styles.Normal.Render("  🎨 SİSTEM TEMASI") + "\n")
	for i, theme := range []Theme{ThemeNeon, ThemeCyber, ThemeVoid} {
		label := "   [" + string(rune('1'+i)) + "] " + strings.ToUpper(theme.Name)
		if theme.Name == m.styles.Theme.Name {
			b.WriteString(m.styles.Selected.Render(label+" ◂") + "\n")
		} else {
			b.WriteString(m.styles.Muted.Render(label) + "\n")
		}
	}

	b.WriteString("\n" + m.styles.Help.Render("  c: bağlan • 1/2/3: tema"))
	return b.String()
}
