package ui

import (
	"context"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibra-app/vibra/internal/ai"
	"github.com/vibra-app/vibra/internal/haptics"
)

// postSubmittedMsg hands a finished draft to the root coordinator.
type postSubmittedMsg struct {
	content string
	image   string
}

// createCancelledMsg abandons the draft.
type createCancelledMsg struct{}

// captionEnhancedMsg carries the AI-rewritten (and sanitized) draft text.
type captionEnhancedMsg struct {
	text string
}

// Demo image pool; picking one stands in for the gallery picker.
var imagePool = []string{
	"https://images.unsplash.com/photo-1535905557558-afc4877a26fc",
	"https://images.unsplash.com/photo-1555680202-c86f0e12f086",
	"https://images.unsplash.com/photo-1620641788421-7a1c342ea42e",
	"https://images.unsplash.com/photo-1504639725590-34d0984388bd",
}

// CreateModel is the composer: a full-screen modal takeover (neither the
// dock nor the radio renders while it is up).
type CreateModel struct {
	styles *Styles
	haptic *haptics.Engine
	client *ai.Client

	textarea textarea.Model
	image    string
	loading  bool
	spinner  spinner.Model

	width  int
	height int
}

func NewCreateModel(styles *Styles, haptic *haptics.Engine, client *ai.Client) CreateModel {
	ta := textarea.New()
	ta.Placeholder = "Şu an ne düşünüyorsun? #future"
	ta.CharLimit = 1000
	ta.SetHeight(5)
	ta.ShowLineNumbers = false
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Status

	return CreateModel{
		styles:   styles,
		haptic:   haptic,
		client:   client,
		textarea: ta,
		spinner:  s,
		width:    80,
		height:   24,
	}
}

func (m CreateModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m CreateModel) Update(msg tea.Msg) (CreateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 8)
		return m, nil

	case captionEnhancedMsg:
		m.loading = false
		m.textarea.SetValue(msg.text)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return createCancelledMsg{} }

		case "ctrl+s":
			return m.submit()

		case "ctrl+e":
			return m.enhance()

		case "ctrl+o":
			m.image = imagePool[rand.Intn(len(imagePool))]
			return m, nil

		case "ctrl+x":
			m.image = ""
			return m, nil

		default:
			if m.loading {
				// The draft is being rewritten; don't type over it.
				return m, nil
			}
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// submit emits the draft. Blank drafts never leave the composer: this is
// the composer-side precondition the root relies on.
func (m CreateModel) submit() (CreateModel, tea.Cmd) {
	content := strings.TrimSpace(m.textarea.Value())
	if content == "" {
		return m, nil
	}
	m.haptic.Trigger(haptics.Tap)
	image := m.image
	return m, func() tea.Msg {
		return postSubmittedMsg{content: content, image: image}
	}
}

// enhance sends the draft through the caption-rewrite collaborator once.
// Disabled while a rewrite is in flight or the draft is blank.
func (m CreateModel) enhance() (CreateModel, tea.Cmd) {
	text := strings.TrimSpace(m.textarea.Value())
	if text == "" || m.loading {
		return m, nil
	}

	m.loading = true
	client := m.client
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return captionEnhancedMsg{text: client.VibeCheck(context.Background(), text)}
	})
}

func (m CreateModel) View() string {
	s := m.styles.Title.Render("✨ Yeni Vibe") + "\n\n"
	s += m.textarea.View() + "\n\n"

	if m.image != "" {
		s += m.styles.Muted.Render("📎 "+m.image) + "\n"
	}

	if m.loading {
		s += m.spinner.View() + m.styles.Status.Render(" AI ile parlatılıyor...") + "\n"
	}

	s += "\n" + m.styles.Help.Render("ctrl+s: paylaş • ctrl+e: AI ile parlat • ctrl+o: medya ekle • ctrl+x: medyayı kaldır • esc: vazgeç")
	return s
}
