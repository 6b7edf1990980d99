package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/notequiz/render"
)

const (
	// Default canvas size when the terminal size is unknown.
	Width  = 72
	Height = 32
)

// https://github.com/inngest/inngest/blob/main/pkg/cli/styles.go
var (
	Primary = lipgloss.Color("#4636f5")
	Green   = lipgloss.Color("#9dcc3a")
	Red     = lipgloss.Color("#ff0000")
	White   = lipgloss.Color("#ffffff")
	Black   = lipgloss.Color("#000000")

	// Palette maps widget colors to terminal colors.
	Palette = map[render.Color]lipgloss.TerminalColor{
		render.Background: Primary,
		render.Label:      Primary,
		render.LabelText:  White,
		render.Paper:      White,
		render.Ink:        Black,
		render.WhiteKey:   White,
		render.BlackKey:   Black,
		render.Highlight:  Red,
	}

	// Status Bar.
	StatusNugget = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Padding(0, 1)
	CorrectStyle = StatusNugget.Copy().
			Background(Green)
	WrongStyle = StatusNugget.Copy().
			Background(Red)
	StatsStyle = StatusNugget.Copy().
			Background(lipgloss.Color("#e783f2")).
			Align(lipgloss.Right)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	StatusStyle = lipgloss.NewStyle().
			Inherit(StatusBarStyle).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().Inherit(StatusBarStyle)

	HelpMenu = lipgloss.NewStyle().Align(lipgloss.Left)
)

// Cell returns the style for one canvas cell.
func Cell(fg, bg render.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Palette[fg]).
		Background(Palette[bg])
}

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	err := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return err + content
}
