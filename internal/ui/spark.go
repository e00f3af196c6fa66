package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vibra-app/vibra/internal/ai"
)

// sparkRespondedMsg carries the collaborator's (always-resolving) answer.
type sparkRespondedMsg struct {
	text string
}

type sparkRole int

const (
	roleUser sparkRole = iota
	roleAssistant
)

type sparkEntry struct {
	role sparkRole
	text string
}

type sparkSuggestion struct {
	label  string
	prompt string
}

var sparkSuggestions = []sparkSuggestion{
	{label: "Moduma göre şarkı öner", prompt: "Şu an biraz melankoliğim ama enerjik hissetmek istiyorum. Bana Türkçe ve Yabancı karışık 3 şarkı önerir misin?"},
	{label: "Bu akşam ne izlesem?", prompt: "Bilim kurgu ve gerilim seven biriyim. Bu akşam izlemelik, beynimi yakacak bir film öner."},
	{label: "Instagram biyografimi düzelt", prompt: "Adım Can, gezmeyi ve fotoğraf çekmeyi severim. Instagram profilim için havalı, kısa bir biyografi yazar mısın?"},
	{label: "Bana bir şaka yap", prompt: "Beni güldürecek kısa ve zekice bir espri yap."},
}

// SparkModel is the AI assistant screen: a conversation history, a pending
// flag, and suggestion chips that feed the same send path as typed input.
type SparkModel struct {
	styles *Styles
	client *ai.Client

	entries  []sparkEntry
	pending  bool
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
}

func NewSparkModel(styles *Styles, client *ai.Client) SparkModel {
	ti := textinput.New()
	ti.Placeholder = "Vibra'ya bir şeyler sor..."
	ti.CharLimit = 500
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Status

	vp := viewport.New(80, 20)

	return SparkModel{
		styles:   styles,
		client:   client,
		input:    ti,
		viewport: vp,
		spinner:  s,
		width:    80,
		height:   24,
	}
}

// InputFocused reports whether typed keys belong to the prompt input.
func (m SparkModel) InputFocused() bool {
	return m.input.Focused()
}

func (m SparkModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SparkModel) Update(msg tea.Msg) (SparkModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.input.Width = msg.Width - 8
		m.updateViewportContent()
		return m, nil

	case sparkRespondedMsg:
		m.entries = append(m.entries, sparkEntry{role: roleAssistant, text: msg.text})
		m.pending = false
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if m.pending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m SparkModel) handleKey(msg tea.KeyMsg) (SparkModel, tea.Cmd) {
	// Suggestion chips: available from the empty state before any typing.
	if len(m.entries) == 0 && m.input.Value() == "" && !m.pending {
		switch msg.String() {
		case "1", "2", "3", "4":
			idx := int(msg.String()[0] - '1')
			return m.send(sparkSuggestions[idx].prompt)
		}
	}

	switch msg.String() {
	case "esc":
		if m.input.Focused() {
			m.input.Blur()
		}
		return m, nil

	case "i":
		if !m.input.Focused() {
			m.input.Focus()
			return m, textinput.Blink
		}

	case "enter":
		if m.input.Focused() {
			return m.send(m.input.Value())
		}
		return m, nil
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// send appends the user entry and issues exactly one collaborator call.
// Blank input is rejected; a second send while pending is prevented here,
// at the call site, not queued.
func (m SparkModel) send(text string) (SparkModel, tea.Cmd) {
	text = strings.TrimSpace(text)
	if text == "" || m.pending {
		return m, nil
	}

	m.entries = append(m.entries, sparkEntry{role: roleUser, text: text})
	m.pending = true
	m.input.Reset()
	m.updateViewportContent()
	m.viewport.GotoBottom()

	client := m.client
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return sparkRespondedMsg{text: client.Ask(context.Background(), text)}
	})
}

func (m *SparkModel) updateViewportContent() {
	wrapWidth := m.viewport.Width
	if wrapWidth <= 0 {
		wrapWidth = 80
	}

	var content strings.Builder
	for i, entry := range m.entries {
		if i > 0 {
			content.WriteString("\n")
		}
		if entry.role == roleUser {
			content.WriteString(m.styles.Selected.Render("Sen") + "\n")
			content.WriteString(m.styles.Normal.Render(wordwrap.String(entry.text, wrapWidth-4)) + "\n")
		} else {
			content.WriteString(m.styles.Accent.Render("✦ Vibra") + "\n")
			content.WriteString(m.styles.MessageFromOther.Render(wordwrap.String(entry.text, wrapWidth-4)) + "\n")
		}
	}

	m.viewport.SetContent(content.String())
}

func (m SparkModel) View() string {
	s := m.styles.Title.Render("✦ VIBRA AI") + " " + m.styles.Subtitle.Render("YAPAY ZEKA ASİSTANI") + "\n"

	if len(m.entries) == 0 {
		s += "\n" + m.styles.Normal.Render("  Merhaba! Ben Vibra. Senin için ne yapabilirim?") + "\n\n"
		for i, sug := range sparkSuggestions {
			s += m.styles.Muted.Render("   ["+string(rune('1'+i))+"] ") + m.styles.Normal.Render(sug.label) + "\n"
		}
		s += "\n"
	} else {
		s += m.viewport.View() + "\n"
	}

	if m.pending {
		s += m.spinner.View() + m.styles.Status.Render(" düşünüyor...") + "\n"
	}

	s += m.styles.Input.Render("? ") + m.input.View() + "\n"
	if m.input.Focused() {
		s += m.styles.Help.Render("enter: sor • esc: çık")
	} else {
		s += m.styles.Help.Render("i: yaz • ↑↓: kaydır")
	}
	return s
}
