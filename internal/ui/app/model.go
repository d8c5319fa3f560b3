package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	meditationdto "mindmate/internal/modules/meditation/dto"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/ui/components"
	"mindmate/internal/ui/theme"
	dashboardview "mindmate/internal/ui/views/dashboard"
	meditationsview "mindmate/internal/ui/views/meditations"
	quotesview "mindmate/internal/ui/views/quotes"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type meditationPort interface {
	meditationsview.MeditationPort
	Start(ctx context.Context, userID, title string) (meditationdto.ActiveOutput, error)
	Active(ctx context.Context) (meditationdto.ActiveOutput, error)
	Complete(ctx context.Context, rating *int, notes string) (meditationdto.SessionOutput, error)
	Abandon(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabQuotes
	tabMeditations
	tabCount
)

var tabLabels = [tabCount]string{
	"Прогресс", "Цитаты", "Медитации",
}

// paletteHints must stay in sync with the switch in executePalette.
var paletteHints = []string{
	"meditation:start",
	"meditation:complete <1-5> [notes]",
	"meditation:abandon",
	"quote:view",
	"quote:like",
	"stats:refresh",
}

// ─── async messages ───────────────────────────────────────────────────────────

type activeLoadedMsg struct {
	active meditationdto.ActiveOutput
	err    error
}

type meditationStartedMsg struct {
	active meditationdto.ActiveOutput
	err    error
}

type meditationEndedMsg struct {
	session   meditationdto.SessionOutput
	abandoned bool
	err       error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Like    key.Binding
	Start   key.Binding
	Refresh key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "mark quote viewed")),
		Like:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle like")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start meditation")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh stats")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Refresh},
		{k.Enter, k.Like, k.Start},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the active
// meditation, the help overlay and the command palette; rendering is delegated
// to sub-views.
type Model struct {
	userID string

	meditation meditationPort

	dashView  dashboardview.Model
	quoteView quotesview.Model
	medView   meditationsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	active    meditationdto.ActiveOutput
	hasActive bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	userID string,
	stats dashboardview.StatsPort,
	quotes quotesview.QuotePort,
	meditation meditationPort,
) Model {
	return Model{
		userID:     userID,
		meditation: meditation,
		dashView:   dashboardview.New(stats, userID),
		quoteView:  quotesview.New(quotes, userID),
		medView:    meditationsview.New(meditation, userID),
		activeTab:  tabDashboard,
		keys:       defaultKeys(),
		help:       help.New(),
		palette:    components.NewPalette(paletteHints),
		status:     "готово",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.quoteView.Init(),
		m.medView.Init(),
		m.loadActiveCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case activeLoadedMsg:
		switch {
		case msg.err == nil:
			m.hasActive = true
			m.active = msg.active
			m.status = "медитация продолжается: " + msg.active.Title
		case !errors.Is(msg.err, apperrors.ErrNoActiveMeditation):
			m.status = "active meditation check: " + msg.err.Error()
		}

	case meditationStartedMsg:
		if msg.err != nil {
			m.status = "meditation start failed: " + msg.err.Error()
		} else {
			m.hasActive = true
			m.active = msg.active
			m.status = "медитация началась: " + msg.active.Title
		}

	case meditationEndedMsg:
		if msg.err != nil {
			m.status = "meditation end failed: " + msg.err.Error()
			return m, nil
		}
		m.hasActive = false
		m.active = meditationdto.ActiveOutput{}
		if msg.abandoned {
			m.status = "медитация прервана"
			return m, nil
		}
		m.status = fmt.Sprintf("медитация завершена: %d мин", msg.session.Duration)
		return m, tea.Batch(m.medView.Reload(), m.dashView.Refresh())

	// Sub-view results are routed regardless of the active tab.
	case dashboardview.LoadedMsg:
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		return m, cmd

	case quotesview.LoadedMsg, quotesview.ViewedMsg:
		if viewed, ok := msg.(quotesview.ViewedMsg); ok {
			if viewed.Err != nil {
				m.status = "quote: " + viewed.Err.Error()
			} else if viewed.View.Liked {
				m.status = "цитата в избранном"
			} else {
				m.status = "просмотр записан"
			}
		}
		var cmd tea.Cmd
		m.quoteView, cmd = m.quoteView.Update(msg)
		return m, cmd

	case meditationsview.HistoryLoadedMsg:
		var cmd tea.Cmd
		m.medView, cmd = m.medView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "готово"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "r":
			if m.activeTab == tabDashboard {
				cmds = append(cmds, m.dashView.Refresh())
			}
		case "enter":
			if m.activeTab == tabQuotes {
				cmds = append(cmds, m.quoteView.MarkViewed())
			}
		case "l":
			if m.activeTab == tabQuotes {
				cmds = append(cmds, m.quoteView.ToggleLike())
			}
		case "s":
			if m.activeTab == tabMeditations {
				if title, ok := m.medView.SelectedTitle(); ok {
					cmds = append(cmds, m.startMeditationCmd(title))
				}
			}
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabQuotes:
		m.quoteView, tabCmd = m.quoteView.Update(msg)
	case tabMeditations:
		m.medView, tabCmd = m.medView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabQuotes:
		return m.quoteView.View()
	case tabMeditations:
		return m.medView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "mindmate  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Panel).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render("● "+m.active.Title) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Panel).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "meditation:start":
		title, ok := m.medView.SelectedTitle()
		if !ok {
			m.status = "no meditation selected"
			return m, nil
		}
		return m, m.startMeditationCmd(title)

	case "meditation:complete":
		var rating *int
		notes := ""
		if len(parts) >= 2 {
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				m.status = "usage: meditation:complete <1-5> [notes]"
				return m, nil
			}
			rating = &n
			notes = strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
		}
		return m, m.completeMeditationCmd(rating, notes)

	case "meditation:abandon":
		return m, m.abandonMeditationCmd()

	case "quote:view":
		m.activeTab = tabQuotes
		return m, m.quoteView.MarkViewed()

	case "quote:like":
		m.activeTab = tabQuotes
		return m, m.quoteView.ToggleLike()

	case "stats:refresh":
		m.activeTab = tabDashboard
		return m, m.dashView.Refresh()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open, in
// which case global key bindings yield to free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabQuotes:
		return m.quoteView.Filtering()
	case tabMeditations:
		return m.medView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.quoteView, _ = m.quoteView.Update(sz)
	m.medView, _ = m.medView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.meditation.Active(context.Background())
		return activeLoadedMsg{active: active, err: err}
	}
}

func (m Model) startMeditationCmd(title string) tea.Cmd {
	return func() tea.Msg {
		active, err := m.meditation.Start(context.Background(), m.userID, title)
		return meditationStartedMsg{active: active, err: err}
	}
}

func (m Model) completeMeditationCmd(rating *int, notes string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.meditation.Complete(context.Background(), rating, notes)
		return meditationEndedMsg{session: session, err: err}
	}
}

func (m Model) abandonMeditationCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.meditation.Abandon(context.Background())
		return meditationEndedMsg{abandoned: true, err: err}
	}
}
