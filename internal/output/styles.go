package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vburojevic/logpar/internal/domain"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Keyword styles
	Debug   lipgloss.Style
	Info    lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Default lipgloss.Style

	// Report styles
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),            // Gray
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),             // Cyan
	Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // Orange
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red bold
	Default: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),            // White

	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
}

// KeywordStyle returns the style for a keyword marker
func KeywordStyle(kw domain.Keyword) lipgloss.Style {
	switch kw {
	case domain.KeywordDebug:
		return Styles.Debug
	case domain.KeywordInfo:
		return Styles.Info
	case domain.KeywordWarning:
		return Styles.Warn
	case domain.KeywordError:
		return Styles.Error
	default:
		return Styles.Default
	}
}

// StatusStyle returns a style based on whether serial and parallel agreed
func StatusStyle(consistent bool) lipgloss.Style {
	if consistent {
		return Styles.Success
	}
	return Styles.Danger
}

// StatusText returns the consistency verdict text
func StatusText(consistent bool) string {
	if consistent {
		return "OK"
	}
	return "MISMATCH"
}
