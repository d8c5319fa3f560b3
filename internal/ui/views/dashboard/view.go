package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "mindmate/internal/modules/stats/dto"
	"mindmate/internal/ui/theme"
)

type StatsPort interface {
	Show(ctx context.Context, userID string) (statsdto.StatsOutput, error)
	Refresh(ctx context.Context, userID string) (statsdto.StatsOutput, error)
	Activity(ctx context.Context, userID string, limit int) ([]statsdto.ActivityOutput, error)
}

type LoadedMsg struct {
	Stats    statsdto.StatsOutput
	Activity []statsdto.ActivityOutput
	Err      error
}

type Model struct {
	port     StatsPort
	userID   string
	body     viewport.Model
	spinner  spinner.Model
	stats    statsdto.StatsOutput
	activity []statsdto.ActivityOutput
	err      error
	loading  bool
	width    int
	height   int
}

func New(port StatsPort, userID string) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Panel).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, userID: userID, body: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(false), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.activity = msg.Activity
		}
		m.body.SetContent(m.render())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.body, vCmd = m.body.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Загружаем статистику…")
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.body.View())
}

// Refresh recomputes the counters before reloading them.
func (m Model) Refresh() tea.Cmd {
	return m.load(true)
}

func (m Model) load(refresh bool) tea.Cmd {
	return func() tea.Msg {
		if m.userID == "" {
			return LoadedMsg{Err: fmt.Errorf("no user selected, pass --user")}
		}
		ctx := context.Background()
		var (
			stats statsdto.StatsOutput
			err   error
		)
		if refresh {
			stats, err = m.port.Refresh(ctx, m.userID)
		} else {
			stats, err = m.port.Show(ctx, m.userID)
		}
		if err != nil {
			return LoadedMsg{Err: err}
		}
		activity, err := m.port.Activity(ctx, m.userID, 0)
		return LoadedMsg{Stats: stats, Activity: activity, Err: err}
	}
}

func (m Model) render() string {
	if m.err != nil {
		return theme.Hot.Render(m.err.Error())
	}
	s := m.stats
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Ваш прогресс") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("чатов:          "), s.TotalChatSessions))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("звонков:        "), s.TotalAudioCalls))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("минут медитаций:"), s.TotalMeditationMinutes))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("цитат:          "), s.TotalQuotesViewed))
	if s.LastActivity != nil {
		sb.WriteString(theme.Muted.Render("активность:     ") + s.LastActivity.Local().Format("02.01.2006 15:04") + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("Недавняя активность") + "\n")
	if len(m.activity) == 0 {
		sb.WriteString(theme.Muted.Render("пока пусто") + "\n")
	}
	for _, a := range m.activity {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", theme.Muted.Render(a.At.Local().Format("02.01 15:04")), a.Label))
	}
	sb.WriteString("\n" + theme.Muted.Render("r: пересчитать"))
	return sb.String()
}
