package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astrotap/internal/config"
	"github.com/vovakirdan/astrotap/internal/events"
)

// Fixed chrome rows around the play field: HUD above, help below, and the
// field border.
const (
	hudRows    = 1
	helpRows   = 1
	borderRows = 2
	borderCols = 2
)

var (
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	asteroidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Faint(true)
	modalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	fieldStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245"))
)

// fieldSize returns the inner play-field dimensions for a terminal size.
func fieldSize(width, height int) (cols, rows int) {
	cols = width - borderCols
	rows = height - hudRows - helpRows - borderRows
	return cols, rows
}

// cellToArea maps a terminal cell to play-area coordinates. Returns false
// for cells outside the play field.
func cellToArea(area config.AreaConfig, width, height, cx, cy int) (x, y float64, ok bool) {
	cols, rows := fieldSize(width, height)
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}

	fx := cx - 1
	fy := cy - hudRows - 1
	if fx < 0 || fx >= cols || fy < 0 || fy >= rows {
		return 0, 0, false
	}

	// Center of the cell, in area units.
	x = (float64(fx) + 0.5) * area.Width / float64(cols)
	y = (float64(fy) + 0.5) * area.Height / float64(rows)
	return x, y, true
}

// renderView assembles the complete screen: HUD, bordered play field (or a
// modal overlay), and the help line.
func renderView(frame events.RenderFrame, stats events.StatsSnapshot, area config.AreaConfig, width, height int, h help.Model, keys KeyMap) string {
	cols, rows := fieldSize(width, height)
	if cols <= 0 || rows <= 0 {
		return "terminal too small"
	}

	var field string
	switch {
	case frame.UI.ShowStartScreen:
		field = centerText(cols, rows, "A S T R O T A P\n\ntap the asteroid before it escapes\n\npress enter to start")
	case frame.UI.ShowQuitModal:
		field = centerText(cols, rows, fmt.Sprintf("run over\n\nscore %d\n\npress enter to play again", frame.Hud.Score))
	case frame.UI.ShowPauseModal:
		field = centerText(cols, rows, "paused\n\npress p to resume")
	default:
		field = renderField(frame, area, cols, rows)
	}

	var sb strings.Builder
	sb.WriteString(renderHUD(frame.Hud, stats, width))
	sb.WriteRune('\n')
	sb.WriteString(fieldStyle.Render(field))
	sb.WriteRune('\n')
	sb.WriteString(h.View(keys))
	return sb.String()
}

// renderField draws the shapes of a frame into a cols x rows character
// grid, scaling play-area coordinates to cells.
func renderField(frame events.RenderFrame, area config.AreaConfig, cols, rows int) string {
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for _, shape := range frame.Shapes {
		drawCircle(grid, shape, area, cols, rows)
	}

	style := asteroidStyle
	if frame.Shapes != nil && frame.Shapes[0].Opacity < 0.6 {
		style = dimStyle
	}

	lines := make([]string, rows)
	for y, row := range grid {
		line := string(row)
		if strings.TrimSpace(line) != "" {
			line = style.Render(line)
		}
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}

// drawCircle fills the cells covered by a circular shape. Terminal cells
// are not square, so the radius scales per axis.
func drawCircle(grid [][]rune, shape events.ShapeModel, area config.AreaConfig, cols, rows int) {
	cx := shape.X / area.Width * float64(cols)
	cy := shape.Y / area.Height * float64(rows)
	rx := shape.Radius / area.Width * float64(cols)
	ry := shape.Radius / area.Height * float64(rows)
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}

	for y := int(cy - ry); y <= int(cy+ry); y++ {
		if y < 0 || y >= rows {
			continue
		}
		for x := int(cx - rx); x <= int(cx+rx); x++ {
			if x < 0 || x >= cols {
				continue
			}
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			grid[y][x] = '*'
		}
	}

	// Mark the tappable center.
	if x, y := int(cx), int(cy); y >= 0 && y < rows && x >= 0 && x < cols {
		grid[y][x] = '@'
	}
}

func renderHUD(hud events.HudModel, stats events.StatsSnapshot, width int) string {
	left := scoreStyle.Render(fmt.Sprintf("score %d", hud.Score))
	middle := hudStyle.Render(fmt.Sprintf(
		"  best %d  hits %d  misses %d  escaped %d  x%.1f  %s",
		hud.BestScore, hud.Hits, hud.Misses, hud.Escaped,
		hud.DifficultyMultiplier, formatElapsed(hud.Elapsed),
	))

	line := left + middle
	if stats.Paused {
		line += pausedStyle.Render("  [paused]")
	}
	if w := lipgloss.Width(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

func formatElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func centerText(cols, rows int, text string) string {
	return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, modalStyle.Render(text))
}
