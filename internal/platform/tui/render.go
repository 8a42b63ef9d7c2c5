package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkarpushin/twinstep/internal/core"
	"github.com/mkarpushin/twinstep/internal/game"
)

// Board glyphs.
const (
	runeCell    = '·'
	runeHazard  = '✕'
	runePlayerA = 'A'
	runePlayerB = 'B'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawBoard draws the level grid and both characters onto the screen,
// centered around its midpoint. Grid Y points up, screen Y points down,
// so the vertical axis flips during projection.
func drawBoard(s *core.Screen, board *game.Board, pair *game.Pair, showHazards bool, spacing float64) {
	w, h := board.Grid.W, board.Grid.H
	cx := s.Width() / 2
	cy := s.Height() / 2

	project := func(c core.Coord) (int, int) {
		ax, ay := core.Anchored(c, w, h, spacing)
		// Terminal cells are roughly twice as tall as wide.
		return cx + int(ax), cy - int(ay/2)
	}

	for _, c := range board.Grid.OccupiedCoords() {
		x, y := project(c)
		s.SetColored(x, y, runeCell, core.ColorGray)
	}

	if showHazards {
		for _, c := range board.Hazards {
			x, y := project(c)
			s.SetColored(x, y, runeHazard, core.ColorRed)
		}
	}

	ax, ay := project(pair.A)
	s.SetColored(ax, ay, runePlayerA, core.ColorCyan)
	bx, by := project(pair.B)
	s.SetColored(bx, by, runePlayerB, core.ColorOrange)
}
