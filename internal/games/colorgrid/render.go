package colorgrid

import (
	"fmt"
	"math"
	"strings"

	platformcore "github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/games/colorgrid/core"
)

const (
	cellWidth   = 3 // Terminal columns per grid cell
	hudHeight   = 3 // Title, info line, separator
	footerLines = 4 // Timer bar, palette, controls, message
)

// layout places the board on the screen.
type layout struct {
	box      platformcore.Rect // Border around the cells
	originX  int               // Screen position of cell (0, 0)
	originY  int
	rows     int
	cols     int
	tooSmall bool
}

func (g *Game) layout() layout {
	boxW := g.width*cellWidth + 2
	boxH := g.height + 2
	l := layout{
		box:  platformcore.NewRect((g.screenW-boxW)/2, hudHeight, boxW, boxH),
		rows: g.height,
		cols: g.width,
	}
	l.originX = l.box.X + 1
	l.originY = l.box.Y + 1
	l.tooSmall = boxW > g.screenW || hudHeight+boxH+footerLines > g.screenH
	return l
}

// cellAt maps a screen position to the grid cell drawn there.
func (l layout) cellAt(x, y int) (row, col int, ok bool) {
	if l.tooSmall {
		return 0, 0, false
	}
	cells := platformcore.NewRect(l.originX, l.originY, l.cols*cellWidth, l.rows)
	if !cells.Contains(x, y) {
		return 0, 0, false
	}
	return y - l.originY, (x - l.originX) / cellWidth, true
}

// cellColors maps grid colors to screen colors, normal and highlighted.
var cellColors = map[core.Color][2]platformcore.Color{
	core.ColorRed:   {platformcore.ColorRed, platformcore.ColorBrightRed},
	core.ColorGreen: {platformcore.ColorGreen, platformcore.ColorBrightGreen},
	core.ColorBlue:  {platformcore.ColorBlue, platformcore.ColorBrightBlue},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	l := g.layout()
	if l.tooSmall {
		g.renderTooSmall(dst, l)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst, l)

	y := l.box.Bottom()
	g.renderTimer(dst, l, y)
	g.renderPalette(dst, y+1)
	dst.DrawTextCenteredWithColor(y+2, "space click  u undo  r new  +-[] size  <> timer  p pause  q quit", platformcore.ColorGray)
	g.renderMessage(dst, y+3)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen, l layout) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d for a %dx%d board", l.box.W, hudHeight+l.box.H+footerLines, g.height, g.width))
	dst.DrawTextCenteredWithColor(y+1, "Shrink the board with - and [", platformcore.ColorGray)
}

// renderHUD draws the title and status line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := "COLOR GRID"
	if g.level != nil {
		title += " - " + g.level.Name
	}
	dst.DrawTextCenteredWithColor(0, title, platformcore.ColorCyan)

	s := g.session
	info := fmt.Sprintf("%dx%d   Moves: %d   Cleared: %d/%d   Time: %.1fs",
		s.Height(), s.Width(), s.Moves(), s.Cleared(), s.Height()*s.Width(), g.timer.Remaining().Seconds())
	dst.DrawTextCentered(1, info)

	dst.DrawHLine(0, 2, dst.Width(), '─', platformcore.ColorGray)
}

// renderBoard draws the bordered grid, the cursor and the region a click
// at the cursor would clear.
func (g *Game) renderBoard(dst *platformcore.Screen, l layout) {
	dst.DrawBox(l.box, platformcore.ColorGray)

	highlight := make(map[core.Coord]bool)
	if _, painting := g.session.PaintColor(); !painting && !g.session.IsCompleted() {
		for _, c := range g.session.Region(g.cursorRow, g.cursorCol) {
			highlight[c] = true
		}
	}

	for row := range l.rows {
		for col := range l.cols {
			x := l.originX + col*cellWidth
			y := l.originY + row
			color := g.session.At(row, col)

			if color.IsEmpty() {
				dst.SetWithColor(x+1, y, '·', platformcore.ColorGray)
			} else {
				shade, block := cellColors[color][0], '█'
				if highlight[core.At(row, col)] {
					shade, block = cellColors[color][1], '▓'
				}
				for i := range cellWidth {
					dst.SetWithColor(x+i, y, block, shade)
				}
			}

			if row == g.cursorRow && col == g.cursorCol && !g.session.IsCompleted() {
				bracket := platformcore.ColorBrightWhite
				if paint, on := g.session.PaintColor(); on {
					bracket = cellColors[paint][1]
				}
				dst.SetWithColor(x, y, '[', bracket)
				dst.SetWithColor(x+cellWidth-1, y, ']', bracket)
			}
		}
	}
}

// renderTimer draws the countdown as a bar as wide as the board.
func (g *Game) renderTimer(dst *platformcore.Screen, l layout, y int) {
	frac := g.timer.FractionRemaining()
	filled := int(math.Round(frac * float64(l.box.W)))

	color := platformcore.ColorGreen
	switch {
	case frac <= 0.2:
		color = platformcore.ColorRed
	case frac <= 0.5:
		color = platformcore.ColorYellow
	}

	dst.DrawHLine(l.box.X, y, filled, '━', color)
	dst.DrawHLine(l.box.X+filled, y, l.box.W-filled, '─', platformcore.ColorGray)
}

// renderPalette draws the paint controls with the selected one bracketed.
func (g *Game) renderPalette(dst *platformcore.Screen, y int) {
	paint, painting := g.session.PaintColor()

	var parts []string
	for i, c := range core.PaintColors() {
		label := fmt.Sprintf(" %d %c ", i+1, c.Char())
		if painting && c == paint {
			label = fmt.Sprintf("[%d %c]", i+1, c.Char())
		}
		parts = append(parts, label)
	}
	mode := "clear mode"
	if painting {
		mode = "painting " + paint.String()
	}
	text := "Paint:" + strings.Join(parts, "") + " 0 off   " + mode

	x := (dst.Width() - len(text)) / 2
	dst.DrawText(x, y, text)

	// Tint each color label with its own color.
	for i, c := range core.PaintColors() {
		pos := x + len("Paint:") + i*5 + 3
		dst.SetWithColor(pos, y, c.Char(), cellColors[c][1])
	}
}

// renderMessage draws the end-of-round or pause message.
func (g *Game) renderMessage(dst *platformcore.Screen, y int) {
	switch {
	case g.session.Status() == core.StatusWon:
		dst.DrawTextCenteredWithColor(y, "You win!  Press R for a new board", platformcore.ColorBrightGreen)
	case g.session.Status() == core.StatusLost:
		dst.DrawTextCenteredWithColor(y, "You lose.  Press R for a new board", platformcore.ColorBrightRed)
	case g.paused:
		dst.DrawTextCenteredWithColor(y, "Paused - press P to continue", platformcore.ColorYellow)
	}
}
