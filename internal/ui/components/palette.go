package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mindmate/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

const maxShownHints = 5

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Warm).
			Background(theme.Panel).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtle)
)

// Palette is a command line overlay. Submitted commands are kept so up and
// down walk back through them.
type Palette struct {
	input   textinput.Model
	hints   []string
	history []string
	cursor  int
	visible bool
	width   int
}

func NewPalette(hints []string) Palette {
	ti := textinput.New()
	ti.Placeholder = "введите команду…"
	ti.CharLimit = 256
	return Palette{input: ti, hints: hints}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty input and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.cursor = len(p.history)
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			if val != "" {
				p.history = append(p.history, val)
			}
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "up":
			p.recall(-1)
			return p, nil
		case "down":
			p.recall(1)
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Команды") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if matching := p.matching(); len(matching) > 0 {
		sb.WriteString("\n")
		for _, h := range matching {
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

// recall moves through history; stepping past the newest entry clears the input.
func (p *Palette) recall(step int) {
	if len(p.history) == 0 {
		return
	}
	p.cursor = max(0, min(len(p.history), p.cursor+step))
	if p.cursor == len(p.history) {
		p.input.SetValue("")
		return
	}
	p.input.SetValue(p.history[p.cursor])
	p.input.CursorEnd()
}

func (p Palette) matching() []string {
	prefix := strings.ToLower(strings.TrimSpace(p.input.Value()))
	var out []string
	for _, h := range p.hints {
		if prefix == "" || strings.HasPrefix(h, prefix) {
			out = append(out, h)
			if len(out) == maxShownHints {
				break
			}
		}
	}
	return out
}
