package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dasher-arcade/internal/core"
)

// palette maps core.Color to ANSI 256-colour codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles holds one lipgloss style per palette entry.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57"))

var (
	statusWonStyle  = statusStyle.Background(lipgloss.Color("28"))
	statusLostStyle = statusStyle.Background(lipgloss.Color("124"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// StatusBar renders the one-line footer below the playfield.
func StatusBar(width int, title string, st core.GameState, high int) string {
	style := statusStyle
	status := "playing"
	switch {
	case st.Outcome == core.OutcomeWon:
		style, status = statusWonStyle, "won · R restart"
	case st.Outcome == core.OutcomeCollided:
		style, status = statusLostStyle, "game over · R restart"
	case st.Paused:
		status = "paused"
	}

	left := fmt.Sprintf(" %s │ score %d │ best %d ", title, st.Score, max(high, st.Score))
	right := fmt.Sprintf(" %s │ P pause · Q quit ", status)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return style.Render(truncate(left+right, width))
	}
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
