package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibra-app/vibra/internal/ai"
	"github.com/vibra-app/vibra/internal/config"
	"github.com/vibra-app/vibra/internal/haptics"
	"github.com/vibra-app/vibra/internal/models"
	"github.com/vibra-app/vibra/internal/store"
)

// RootModel is the coordinator: it owns the active view and the post
// timeline, routes rendering to exactly one child view, and receives the
// composer's submit/cancel events. Every other piece of state is local to
// its child model.
type RootModel struct {
	view   models.View
	posts  *store.Posts
	styles *Styles
	haptic *haptics.Engine
	client *ai.Client

	feed    FeedModel
	chat    ChatModel
	radar   RadarModel
	spark   SparkModel
	profile ProfileModel
	create  CreateModel
	dock    DockModel
	radio   RadioModel

	width  int
	height int
}

// NewRootModel wires the stores, styles and child models together.
func NewRootModel(cfg *config.Config, client *ai.Client, haptic *haptics.Engine) RootModel {
	local := models.User{
		ID:       models.LocalUserID,
		Name:     cfg.UserName,
		Handle:   cfg.UserHandle,
		Avatar:   "https://picsum.photos/id/64/200/200",
		Verified: true,
	}

	posts := store.NewPosts(local, store.SeedPosts())
	chats := store.NewChats(store.SeedChatPreviews(), store.SeedChatHistories(), store.SeedReplies())
	styles := NewStyles(ThemeByName(cfg.Theme))

	return RootModel{
		view:    models.ViewFeed,
		posts:   posts,
		styles:  styles,
		haptic:  haptic,
		client:  client,
		feed:    NewFeedModel(styles, haptic, posts),
		chat:    NewChatModel(styles, haptic, chats),
		radar:   NewRadarModel(styles, haptic, store.SeedAnnouncements()),
		spark:   NewSparkModel(styles, client),
		profile: NewProfileModel(styles, haptic, local),
		create:  NewCreateModel(styles, haptic, client),
		dock:    NewDockModel(styles),
		radio:   NewRadioModel(styles),
		width:   80,
		height:  24,
	}
}

// ActiveView returns the current view identifier.
func (m RootModel) ActiveView() models.View { return m.view }

// Posts exposes the root-owned timeline (read-only for callers).
func (m RootModel) Posts() *store.Posts { return m.posts }

func (m RootModel) Init() tea.Cmd {
	return m.spark.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Radio line on top, dock line at the bottom.
		child := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2}
		m.feed, _ = m.feed.Update(child)
		m.chat, _ = m.chat.Update(child)
		m.radar, _ = m.radar.Update(child)
		m.spark, _ = m.spark.Update(child)
		m.profile, _ = m.profile.Update(child)
		m.create, _ = m.create.Update(msg)
		return m, nil

	case viewSelectedMsg:
		return m.changeView(msg.view)

	case postSubmittedMsg:
		m.posts.Submit(msg.content, msg.image)
		m.view = models.ViewFeed
		m.feed = m.feed.GotoTop()
		m.create = NewCreateModel(m.styles, m.haptic, m.client)
		return m, nil

	case createCancelledMsg:
		m.view = models.ViewFeed
		m.create = NewCreateModel(m.styles, m.haptic, m.client)
		return m, nil

	case themeSelectedMsg:
		m.styles.Apply(msg.theme)
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	// Async results are routed to their owning model regardless of the
	// active view, so timers survive navigation.
	case replyDueMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case overlayClearedMsg:
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd

	case sparkRespondedMsg:
		var cmd tea.Cmd
		m.spark, cmd = m.spark.Update(msg)
		return m, cmd

	case captionEnhancedMsg:
		var cmd tea.Cmd
		m.create, cmd = m.create.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var sparkCmd, createCmd tea.Cmd
		m.spark, sparkCmd = m.spark.Update(msg)
		m.create, createCmd = m.create.Update(msg)
		return m, tea.Batch(sparkCmd, createCmd)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// changeView assigns the active view. It never fails; rendering falls back
// to the feed for anything outside the defined set. Entering CREATE starts
// a fresh draft.
func (m RootModel) changeView(view models.View) (RootModel, tea.Cmd) {
	m.view = view
	if view == models.ViewCreate {
		m.create = NewCreateModel(m.styles, m.haptic, m.client)
		return m, m.create.Init()
	}
	return m, nil
}

func (m RootModel) handleKey(msg tea.KeyMsg) (RootModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The composer is a modal takeover: it gets every key.
	if m.view == models.ViewCreate {
		var cmd tea.Cmd
		m.create, cmd = m.create.Update(msg)
		return m, cmd
	}

	// An expanded dock consumes the next key: a menu entry or a
	// tap-outside collapse.
	if m.dock.Expanded() {
		var cmd tea.Cmd
		m.dock, cmd = m.dock.HandleKey(msg)
		return m, cmd
	}

	// Global keys apply unless a text input owns the keyboard.
	captured := (m.view == models.ViewChat && m.chat.InThread()) ||
		(m.view == models.ViewSpark && m.spark.InputFocused())
	if !captured {
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "n":
			m.dock = m.dock.Toggle()
			return m, nil

		case "m":
			// The unread-chat affordance; hidden on the chat view itself.
			if m.view != models.ViewChat {
				return m.changeView(models.ViewChat)
			}
			return m, nil

		case "R":
			m.radio = m.radio.ToggleExpanded()
			return m, nil

		case "P":
			m.radio = m.radio.TogglePlaying()
			return m, nil
		}
	}

	return m.forwardKey(msg)
}

func (m RootModel) forwardKey(msg tea.KeyMsg) (RootModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case models.ViewChat:
		m.chat, cmd = m.chat.Update(msg)
	case models.ViewRadar:
		m.radar, cmd = m.radar.Update(msg)
	case models.ViewSpark:
		m.spark, cmd = m.spark.Update(msg)
	case models.ViewProfile:
		m.profile, cmd = m.profile.Update(msg)
	default:
		m.feed, cmd = m.feed.Update(msg)
	}
	return m, cmd
}

// viewContent dispatches rendering to exactly one of the five views.
// Unrecognized identifiers fail closed onto the feed.
func (m RootModel) viewContent() string {
	switch m.view {
	case models.ViewFeed:
		return m.feed.View()
	case models.ViewChat:
		return m.chat.View()
	case models.ViewRadar:
		return m.radar.View()
	case models.ViewSpark:
		return m.spark.View()
	case models.ViewProfile:
		return m.profile.View()
	default:
		return m.feed.View()
	}
}

func (m RootModel) View() string {
	if m.view == models.ViewCreate {
		return m.create.View()
	}
	return m.radio.View(m.width) + "\n" + m.viewContent() + "\n" + m.dock.View(m.view)
}
