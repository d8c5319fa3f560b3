package theme

import "github.com/charmbracelet/lipgloss"

// Soft sage and sand tones; adaptive so the dashboard reads on light terminals too.
var (
	Panel  = lipgloss.AdaptiveColor{Light: "#f4f1ea", Dark: "#1f2421"}
	Border = lipgloss.AdaptiveColor{Light: "#c9c2b2", Dark: "#3d4740"}
	Text   = lipgloss.AdaptiveColor{Light: "#2f3430", Dark: "#dfe6dc"}
	Subtle = lipgloss.AdaptiveColor{Light: "#7a8079", Dark: "#9aa59b"}
	Accent = lipgloss.AdaptiveColor{Light: "#4f7d63", Dark: "#9cc9a8"}
	Calm   = lipgloss.AdaptiveColor{Light: "#4a6f8a", Dark: "#8fb8d6"}
	Warm   = lipgloss.AdaptiveColor{Light: "#b0643c", Dark: "#e7a878"}

	Title = lipgloss.NewStyle().Foreground(Calm).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtle)
	Hot   = lipgloss.NewStyle().Foreground(Warm).Bold(true)
)
