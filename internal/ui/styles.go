package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles the view composes. NoColor builds
// pass-through styles so the game stays readable on dumb terminals.
type Styles struct {
	Header       lipgloss.Style
	Challenge    lipgloss.Style
	ChallengeBox lipgloss.Style
	Success      lipgloss.Style
	Danger       lipgloss.Style
	Prize        lipgloss.Style
	Muted        lipgloss.Style
}

// NewStyles builds the standard palette, or an unstyled set when
// noColor is set.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Header: plain, Challenge: plain, Success: plain,
			Danger: plain, Prize: plain, Muted: plain,
			ChallengeBox: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1),
		}
	}
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#AAAAAA")).
			PaddingLeft(1),
		Challenge: lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")),
		ChallengeBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00BFFF")).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		Prize:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
	}
}
