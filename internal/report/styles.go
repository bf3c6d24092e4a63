// Package report renders the linear card-based roadmap report.
package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jbw/roadmap/internal/domain"
)

// Styles contains the lipgloss styles for report rendering. Built once
// at startup and passed by reference to drawing routines; nothing here
// is process-global.
type Styles struct {
	Banner         lipgloss.Style
	BannerTitle    lipgloss.Style
	BannerSubtitle lipgloss.Style

	SectionTitle lipgloss.Style
	Separator    lipgloss.Style
	Muted        lipgloss.Style
	Prompt       lipgloss.Style
	ErrorMsg     lipgloss.Style

	CardBorder    lipgloss.Style
	CardMilestone lipgloss.Style
	CardPriority  lipgloss.Style
	CardLink      lipgloss.Style
	Index         lipgloss.Style

	MilestoneHeader lipgloss.Style

	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style
	StatusBlocked    lipgloss.Style
	StatusUnknown    lipgloss.Style
}

// DefaultStyles returns the default report styles.
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Align(lipgloss.Center),
		BannerTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		BannerSubtitle: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("12")),

		SectionTitle: lipgloss.NewStyle().Bold(true),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Muted:        lipgloss.NewStyle().Faint(true),
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ErrorMsg:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),

		CardBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")),
		CardMilestone: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		CardPriority:  lipgloss.NewStyle().Faint(true),
		CardLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Index:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		MilestoneHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),

		ProgressFilled: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ProgressEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		StatusBlocked:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		StatusUnknown:    lipgloss.NewStyle(),
	}
}

// StatusStyle returns the style for a status, with a plain fallback
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

// PriorityIcon returns the colored dot for a priority. Unknown values
// fall back to the low marker.
func PriorityIcon(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return "🔴"
	case domain.PriorityHigh:
		return "🟠"
	case domain.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}
