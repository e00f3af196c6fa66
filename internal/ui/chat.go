package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vibra-app/vibra/internal/haptics"
	"github.com/vibra-app/vibra/internal/models"
	"github.com/vibra-app/vibra/internal/store"
)

const replyDelay = 2500 * time.Millisecond

// replyDueMsg fires when a conversation's simulated counterpart reply is
// due. It carries the conversation id so the append targets the right
// history even if the user has navigated away.
type replyDueMsg struct {
	convID string
}

type chatItem struct {
	preview models.ChatPreview
}

func (i chatItem) Title() string {
	title := i.preview.User.Name
	if i.preview.Online {
		title += " ●"
	}
	if i.preview.UnreadCount > 0 {
		title += fmt.Sprintf(" (%d)", i.preview.UnreadCount)
	}
	return title
}

func (i chatItem) Description() string {
	preview := i.preview.LastMessage
	if len(preview) > 50 {
		preview = preview[:47] + "..."
	}
	return fmt.Sprintf("%s • %s", i.preview.Time, preview)
}

func (i chatItem) FilterValue() string {
	return i.preview.User.Name
}

// ChatModel has two sub-states: the conversation list (no active id) and an
// open thread (active id set). Message history lives in the shared store,
// keyed per conversation.
type ChatModel struct {
	styles *Styles
	haptic *haptics.Engine
	chats  *store.Chats

	list     list.Model
	activeID string
	input    textinput.Model
	viewport viewport.Model
	typing   map[string]bool

	width  int
	height int
}

func NewChatModel(styles *Styles, haptic *haptics.Engine, chats *store.Chats) ChatModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Theme.Primary).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("8"))

	items := make([]list.Item, 0, len(chats.Previews()))
	for _, p := range chats.Previews() {
		items = append(items, chatItem{preview: p})
	}

	l := list.New(items, delegate, 80, 20)
	l.Title = "Mesajlar"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "Mesaj yaz..."
	ti.CharLimit = 500

	vp := viewport.New(80, 20)

	return ChatModel{
		styles:   styles,
		haptic:   haptic,
		chats:    chats,
		list:     l,
		input:    ti,
		viewport: vp,
		typing:   make(map[string]bool),
		width:    80,
		height:   24,
	}
}

// InThread reports whether a conversation is open (its input owns the keys).
func (m ChatModel) InThread() bool {
	return m.activeID != ""
}

func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 7
		m.input.Width = msg.Width - 8
		m.updateViewportContent()
		return m, nil

	case replyDueMsg:
		// The timer outlives the thread view: append to the store by
		// conversation id regardless of what is on screen.
		if _, ok := m.chats.AppendReply(msg.convID); ok {
			m.haptic.Trigger(haptics.Notify)
		}
		m.typing[msg.convID] = false
		if m.activeID == msg.convID {
			m.updateViewportContent()
			m.viewport.GotoBottom()
		}
		return m, nil

	case themeSelectedMsg:
		// The list delegate bakes in the accent color; rebuild it.
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
			Foreground(m.styles.Theme.Primary).
			Bold(true)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
			Foreground(lipgloss.Color("8"))
		m.list.SetDelegate(delegate)
		return m, nil

	case tea.KeyMsg:
		if m.activeID == "" {
			return m.updateList(msg)
		}
		return m.updateThread(msg)
	}

	return m, nil
}

func (m ChatModel) updateList(msg tea.KeyMsg) (ChatModel, tea.Cmd) {
	if msg.String() == "enter" {
		if item, ok := m.list.SelectedItem().(chatItem); ok {
			m.activeID = item.preview.ID
			m.updateViewportContent()
			m.viewport.GotoBottom()
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ChatModel) updateThread(msg tea.KeyMsg) (ChatModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.activeID = ""
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case "enter":
		return m.send()

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// send appends the typed message and arms the single-shot reply timer.
// Whitespace-only input leaves everything unchanged.
func (m ChatModel) send() (ChatModel, tea.Cmd) {
	convID := m.activeID
	if _, ok := m.chats.AppendSelf(convID, m.input.Value()); !ok {
		return m, nil
	}

	m.input.Reset()
	m.haptic.Trigger(haptics.Tap)
	m.typing[convID] = true
	m.updateViewportContent()
	m.viewport.GotoBottom()

	return m, tea.Tick(replyDelay, func(time.Time) tea.Msg {
		return replyDueMsg{convID: convID}
	})
}

func (m *ChatModel) updateViewportContent() {
	if m.activeID == "" {
		return
	}

	wrapWidth := m.viewport.Width
	if wrapWidth <= 0 {
		wrapWidth = 80
	}

	preview, _ := m.chats.Preview(m.activeID)
	var content strings.Builder

	for i, message := range m.chats.Messages(m.activeID) {
		if i > 0 {
			content.WriteString("\n")
		}

		timestamp := message.Timestamp.Format("15:04")

		if message.IsMe {
			header := m.styles.MessageHeader.Render(fmt.Sprintf("Sen • %s", timestamp))
			content.WriteString(lipgloss.NewStyle().Align(lipgloss.Right).Width(wrapWidth).Render(header) + "\n")
			text := m.styles.MessageFromMe.Render(wordwrap.String(message.Text, wrapWidth-10))
			content.WriteString(lipgloss.NewStyle().Align(lipgloss.Right).Width(wrapWidth).Render(text) + "\n")
		} else {
			header := m.styles.MessageHeader.Render(fmt.Sprintf("%s • %s", preview.User.Name, timestamp))
			content.WriteString(header + "\n")
			content.WriteString(m.styles.MessageFromOther.Render(wordwrap.String(message.Text, wrapWidth-10)) + "\n")
		}
	}

	if m.typing[m.activeID] {
		content.WriteString("\n" + m.styles.MessageHeader.Render(preview.User.Name+" yazıyor..."))
	}

	m.viewport.SetContent(content.String())
}

func (m ChatModel) View() string {
	if m.activeID == "" {
		s := m.list.View() + "\n"
		s += m.styles.Help.Render("↑↓/jk: gez • enter: aç • /: ara")
		return s
	}

	preview, _ := m.chats.Preview(m.activeID)
	title := "💬 " + preview.User.Name
	if preview.Online {
		title += m.styles.Accent.Render(" ●")
	}

	s := m.styles.Title.Render(title) + "\n"
	s += m.viewport.View() + "\n\n"
	s += m.styles.Input.Render("> ") + m.input.View() + "\n"
	s += m.styles.Help.Render("enter: gönder • esc: geri")
	return s
}
