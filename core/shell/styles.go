// Package shell - terminal styles
package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the menu shell
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Index   lipgloss.Style
	Prompt  lipgloss.Style
	Result  lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Divider string
}

// DefaultStyles returns the standard color scheme; noColor strips all
// styling for redirected output
func DefaultStyles(noColor bool) Styles {
	divider := strings.Repeat("=", 60)
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain, Header: plain, Index: plain, Prompt: plain,
			Result: plain, Pass: plain, Fail: plain, Warn: plain,
			Error: plain, Muted: plain, Divider: divider,
		}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Header:  lipgloss.NewStyle().Bold(true),
		Index:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Result:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Divider: divider,
	}
}

// verdictStyle picks a color for a qualitative verdict line
func (st Styles) verdictStyle(verdict string) lipgloss.Style {
	v := strings.ToLower(verdict)
	switch {
	case strings.HasPrefix(v, "safe") || strings.HasPrefix(v, "good") || strings.HasPrefix(v, "protective"):
		return st.Pass
	case strings.HasPrefix(v, "unsafe") || strings.HasPrefix(v, "poor") || strings.HasPrefix(v, "porous"):
		return st.Fail
	default:
		return st.Warn
	}
}
