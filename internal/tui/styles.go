package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jbw/roadmap/internal/domain"
)

// Colors used across the panel TUI.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
	ColorBorder  = lipgloss.Color("#4B5563") // Mid gray
)

// Styles holds the styles for the panel TUI.
type Styles struct {
	Header      lipgloss.Style
	HeaderCount lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style
	Row         lipgloss.Style
	Milestone   lipgloss.Style
	Priority    lipgloss.Style
	PaneBorder  lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldValue  lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	FilterBadge lipgloss.Style
	Footer      lipgloss.Style

	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style
	StatusBlocked    lipgloss.Style
	StatusUnknown    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		HeaderCount: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary),
		Cursor: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Row:       lipgloss.NewStyle(),
		Milestone: lipgloss.NewStyle().Foreground(ColorInfo),
		Priority:  lipgloss.NewStyle().Foreground(ColorWarning),
		PaneBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		FieldLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted),
		FieldValue: lipgloss.NewStyle(),
		Muted:      lipgloss.NewStyle().Foreground(ColorMuted),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError),
		FilterBadge: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true),
		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),

		StatusTodo:       lipgloss.NewStyle().Foreground(ColorInfo),
		StatusInProgress: lipgloss.NewStyle().Foreground(ColorWarning),
		StatusDone:       lipgloss.NewStyle().Foreground(ColorSuccess),
		StatusBlocked:    lipgloss.NewStyle().Foreground(ColorError),
		StatusUnknown:    lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// StatusStyle returns the style for a status, with a muted fallback
// for unknown values.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusTodo:
		return s.StatusTodo
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusDone:
		return s.StatusDone
	case domain.StatusBlocked:
		return s.StatusBlocked
	default:
		return s.StatusUnknown
	}
}
