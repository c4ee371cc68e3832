package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Summary     lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Sidebar     lipgloss.Style
	Detail      lipgloss.Style
	ListItem    lipgloss.Style
	ListActive  lipgloss.Style
	Checkbox    lipgloss.Style
	CheckboxOn  lipgloss.Style
	SectionHead lipgloss.Style
	FightRow    lipgloss.Style
	Ranking     lipgloss.Style
	Error       lipgloss.Style
	FieldError  lipgloss.Style
	Success     lipgloss.Style
	Loading     lipgloss.Style
	Modal       lipgloss.Style
	ModalTitle  lipgloss.Style
	EmailLabel  lipgloss.Style
}

// NewStyles creates the style set for the given theme
func NewStyles(dark bool) *Styles {
	accent := lipgloss.Color("203") // UFC red
	text := lipgloss.Color("235")
	muted := lipgloss.Color("245")
	border := lipgloss.Color("250")
	if dark {
		text = lipgloss.Color("252")
		muted = lipgloss.Color("243")
		border = lipgloss.Color("238")
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Summary:    lipgloss.NewStyle().Foreground(muted),
		Dim:        lipgloss.NewStyle().Faint(true),
		Help:       lipgloss.NewStyle().Faint(true),
		Main:       lipgloss.NewStyle().Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(border).
			PaddingRight(1),
		Detail:     lipgloss.NewStyle().PaddingLeft(2),
		ListItem:   lipgloss.NewStyle().Foreground(text),
		ListActive: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Checkbox:   lipgloss.NewStyle().Foreground(muted),
		CheckboxOn: lipgloss.NewStyle().Foreground(accent),
		SectionHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(text).
			MarginTop(1),
		FightRow:   lipgloss.NewStyle().Foreground(text),
		Ranking:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Loading:    lipgloss.NewStyle().Foreground(muted),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(text),
		EmailLabel: lipgloss.NewStyle().Foreground(muted),
	}
}
