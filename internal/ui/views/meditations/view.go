package meditations

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	meditationdto "mindmate/internal/modules/meditation/dto"
	"mindmate/internal/ui/theme"
)

type MeditationPort interface {
	Catalog(ctx context.Context) []meditationdto.CatalogItemOutput
	History(ctx context.Context, userID string, limit int) ([]meditationdto.SessionOutput, error)
	Stats(ctx context.Context, userID string) (meditationdto.StatsOutput, error)
}

type HistoryLoadedMsg struct {
	Sessions []meditationdto.SessionOutput
	Stats    meditationdto.StatsOutput
	Err      error
}

type catalogItem struct {
	item meditationdto.CatalogItemOutput
}

func (i catalogItem) Title() string       { return i.item.Title }
func (i catalogItem) Description() string { return fmt.Sprintf("%d мин", i.item.Minutes) }
func (i catalogItem) FilterValue() string { return i.item.Title }

type Model struct {
	port     MeditationPort
	userID   string
	list     list.Model
	preview  viewport.Model
	sessions []meditationdto.SessionOutput
	stats    meditationdto.StatsOutput
	width    int
	height   int
}

func New(port MeditationPort, userID string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Calm).BorderForeground(theme.Accent)

	catalog := port.Catalog(context.Background())
	items := make([]list.Item, len(catalog))
	for i, c := range catalog {
		items[i] = catalogItem{item: c}
	}
	l := list.New(items, delegate, 0, 0)
	l.Title = "Медитации"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Panel).
		Foreground(theme.Text).
		Padding(1)

	m := Model{port: port, userID: userID, list: l, preview: vp}
	m.preview.SetContent(m.renderDetail())
	return m
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case HistoryLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Медитации: " + msg.Err.Error()
		} else {
			m.sessions = msg.Sessions
			m.stats = msg.Stats
		}
		m.preview.SetContent(m.renderDetail())
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		m.preview.SetContent(m.renderDetail())
	}

	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Panel).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) SelectedTitle() (string, bool) {
	if item, ok := m.list.SelectedItem().(catalogItem); ok {
		return item.item.Title, true
	}
	return "", false
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refetches history and stats after a session is logged.
func (m Model) Reload() tea.Cmd {
	if m.userID == "" {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		sessions, err := m.port.History(ctx, m.userID, 5)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		stats, err := m.port.Stats(ctx, m.userID)
		return HistoryLoadedMsg{Sessions: sessions, Stats: stats, Err: err}
	}
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	var sb strings.Builder
	if item, ok := m.list.SelectedItem().(catalogItem); ok {
		sb.WriteString(theme.Title.Render(item.item.Title) + "\n\n")
		sb.WriteString(item.item.Description + "\n\n")
		sb.WriteString(theme.Muted.Render("видео: ") + item.item.VideoURL + "\n\n")
	}
	sb.WriteString(theme.Title.Render("Ваша практика") + "\n")
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("сессий: "), m.stats.TotalSessions))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("минут:  "), m.stats.TotalMinutes))
	sb.WriteString(fmt.Sprintf("%s%.1f\n", theme.Muted.Render("оценка: "), m.stats.AvgRating))
	if len(m.sessions) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("последние:") + "\n")
		for _, s := range m.sessions {
			rating := "-"
			if s.Rating != nil {
				rating = strings.Repeat("★", *s.Rating)
			}
			sb.WriteString(fmt.Sprintf("  %s  %s  %d мин  %s\n",
				s.CompletedAt.Local().Format("02.01 15:04"), s.MeditationTitle, s.Duration, rating))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("s: начать  :meditation:complete <1-5> [заметка]"))
	return sb.String()
}
