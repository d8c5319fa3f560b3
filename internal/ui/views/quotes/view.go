package quotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	quotedto "mindmate/internal/modules/quote/dto"
	"mindmate/internal/ui/theme"
)

type QuotePort interface {
	List(ctx context.Context) ([]quotedto.QuoteOutput, error)
	View(ctx context.Context, userID, quoteID string, liked bool) (quotedto.ViewOutput, error)
	ToggleLike(ctx context.Context, userID, quoteID string) (quotedto.ViewOutput, error)
	Liked(ctx context.Context, userID string, limit int) ([]quotedto.ViewedQuoteOutput, error)
}

type LoadedMsg struct {
	Quotes []quotedto.QuoteOutput
	Liked  map[string]bool
	Err    error
}

// ViewedMsg reports a recorded view or a like toggle.
type ViewedMsg struct {
	View quotedto.ViewOutput
	Err  error
}

type quoteItem struct {
	quote quotedto.QuoteOutput
	liked bool
}

func (i quoteItem) Title() string {
	if i.liked {
		return "♥ " + i.quote.Author
	}
	return i.quote.Author
}
func (i quoteItem) Description() string { return i.quote.Category }
func (i quoteItem) FilterValue() string { return i.quote.Author + " " + i.quote.Text }

type Model struct {
	port    QuotePort
	userID  string
	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	liked   map[string]bool
	loading bool
	width   int
	height  int
}

func New(port QuotePort, userID string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Calm).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Цитаты"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Panel).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{
		port:    port,
		userID:  userID,
		list:    l,
		preview: vp,
		spinner: sp,
		liked:   map[string]bool{},
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Цитаты: " + msg.Err.Error()
			return m, nil
		}
		m.liked = msg.Liked
		cmds = append(cmds, m.list.SetItems(m.items(msg.Quotes)))
		m.preview.SetContent(m.renderDetail())

	case ViewedMsg:
		if msg.Err == nil {
			m.liked[msg.View.QuoteID] = msg.View.Liked
			for i, item := range m.list.Items() {
				if qi, ok := item.(quoteItem); ok && qi.quote.ID == msg.View.QuoteID {
					cmds = append(cmds, m.list.SetItem(i, quoteItem{quote: qi.quote, liked: msg.View.Liked}))
					break
				}
			}
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.preview.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Загружаем цитаты…")
	}

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

func (m Model) SelectedQuoteID() (string, bool) {
	if item, ok := m.list.SelectedItem().(quoteItem); ok {
		return item.quote.ID, true
	}
	return "", false
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// MarkViewed records a plain view of the selected quote.
func (m Model) MarkViewed() tea.Cmd {
	id, ok := m.SelectedQuoteID()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		view, err := m.port.View(context.Background(), m.userID, id, false)
		return ViewedMsg{View: view, Err: err}
	}
}

func (m Model) ToggleLike() tea.Cmd {
	id, ok := m.SelectedQuoteID()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		view, err := m.port.ToggleLike(context.Background(), m.userID, id)
		return ViewedMsg{View: view, Err: err}
	}
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) items(quotes []quotedto.QuoteOutput) []list.Item {
	items := make([]list.Item, len(quotes))
	for i, q := range quotes {
		items[i] = quoteItem{quote: q, liked: m.liked[q.ID]}
	}
	return items
}

func (m Model) selected() quotedto.QuoteOutput {
	if item, ok := m.list.SelectedItem().(quoteItem); ok {
		return item.quote
	}
	return quotedto.QuoteOutput{}
}

func (m Model) renderDetail() string {
	q := m.selected()
	if q.ID == "" {
		return theme.Muted.Render("Выберите цитату")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("«"+q.Text+"»") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", theme.Muted.Render("—"), q.Author))
	sb.WriteString(theme.Muted.Render("категория: ") + q.Category + "\n")
	if m.liked[q.ID] {
		sb.WriteString("\n" + theme.Hot.Render("♥ в избранном") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: отметить просмотр  l: нравится"))
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		quotes, err := m.port.List(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		liked := map[string]bool{}
		if m.userID != "" {
			views, err := m.port.Liked(ctx, m.userID, len(quotes))
			if err != nil {
				return LoadedMsg{Err: err}
			}
			for _, v := range views {
				liked[v.QuoteID] = true
			}
		}
		return LoadedMsg{Quotes: quotes, Liked: liked}
	}
}
