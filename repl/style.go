package repl

import "github.com/charmbracelet/lipgloss"

// Styles holds the terminal styles used for REPL output. With color off every
// style is bypassed and text is written unchanged.
type Styles struct {
	color bool

	Prompt   lipgloss.Style
	Error    lipgloss.Style
	Position lipgloss.Style
	Banner   lipgloss.Style
}

// NewStyles returns the REPL styles; color=false yields plain output.
func NewStyles(color bool) Styles {
	return Styles{
		color:    color,
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Italic(true),
	}
}

// paint renders a single line of text with s.
func (st Styles) paint(s lipgloss.Style, text string) string {
	if !st.color {
		return text
	}
	return s.Render(text)
}

func (st Styles) prompt(text string) string     { return st.paint(st.Prompt, text) }
func (st Styles) errorLabel(text string) string { return st.paint(st.Error, text) }
func (st Styles) position(text string) string   { return st.paint(st.Position, text) }
func (st Styles) banner(text string) string     { return st.paint(st.Banner, text) }
