package ladypac

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/maze"
	"github.com/vovakirdan/ladypac/internal/motion"
)

const hudHeight = 2

var ghostColors = []core.Color{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorOrange}

// Render draws the maze, actors, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil || g.grid == nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot load level", core.ColorRed)
		if g.loadErr != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error(), core.ColorGray)
		}
		return
	}

	cellW := 2
	if g.grid.Width()*cellW > dst.Width() {
		cellW = 1
	}
	if g.grid.Width()*cellW > dst.Width() || g.grid.Height()+hudHeight > dst.Height() {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal", core.ColorGray)
		return
	}

	offX := (dst.Width() - g.grid.Width()*cellW) / 2
	offY := hudHeight + (dst.Height()-hudHeight-g.grid.Height())/2

	g.renderHUD(dst)
	g.renderMaze(dst, offX, offY, cellW)
	for _, gh := range g.ghosts {
		g.renderGhost(dst, gh, offX, offY, cellW)
	}
	g.renderPlayer(dst, offX, offY, cellW)

	switch {
	case g.Finished() && g.revealed:
		title := "Game Over"
		if g.outcome == OutcomeWin {
			title = "You Win!"
		}
		g.renderOverlay(dst, title, fmt.Sprintf("Score: %d", g.tally.Score()), "R restart  Q quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case !g.active:
		g.renderOverlay(dst, "Paused", "Focus the window to continue")
	case !g.player.HasMoved() && !g.Finished():
		dst.DrawTextCentered(offY+g.grid.Height()/2, " Ready! ", core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" LADY PAC  %s  Score: %d", g.layout.Name, g.tally.Score())
	dst.DrawTextColored(0, 0, left, core.ColorBrightYellow)

	lives := g.tally.Lives()
	hearts := lives
	if g.tally.BonusGranted() && !g.tally.BonusLifeVisible() && hearts > 0 {
		hearts--
	}
	right := "Lives: " + strings.Repeat("♥", hearts) + strings.Repeat(" ", lives-hearts) + " "
	if g.muted {
		right = "[muted] " + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorRed)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderMaze(dst *core.Screen, offX, offY, cellW int) {
	powerBlink := (g.tick/15)%2 == 0
	for row := range g.grid.Height() {
		for col := range g.grid.Width() {
			x, y := offX+col*cellW, offY+row
			switch g.grid.CellAt(col, row) {
			case maze.Wall:
				for i := range cellW {
					dst.SetColored(x+i, y, '█', core.ColorBlue)
				}
			case maze.Pellet:
				dst.SetColored(x, y, '·', core.ColorWhite)
			case maze.PowerPellet:
				if powerBlink {
					dst.SetColored(x, y, '●', core.ColorBrightWhite)
				}
			}
		}
	}
}

func (g *Game) actorCell(m *motion.Mover, offX, offY, cellW int) (int, int) {
	col, row := m.Tile(m.TileSize())
	return offX + col*cellW, offY + row
}

// playerGlyph picks the sprite: mouth closed on frame 2, otherwise open
// toward the facing direction.
func (g *Game) playerGlyph() rune {
	if g.player.Frame() == 2 {
		return '●'
	}
	switch g.player.Orientation().Rotation {
	case 90:
		return 'ᗢ'
	case 180:
		return 'ᗤ'
	case 270:
		return 'ᗣ'
	default:
		return 'ᗧ'
	}
}

func (g *Game) renderPlayer(dst *core.Screen, offX, offY, cellW int) {
	x, y := g.actorCell(&g.player.Mover, offX, offY, cellW)
	dst.SetColored(x, y, g.playerGlyph(), core.ColorBrightYellow)
}

func (g *Game) renderGhost(dst *core.Screen, gh *Ghost, offX, offY, cellW int) {
	x, y := g.actorCell(&gh.Mover, offX, offY, cellW)
	flash := (g.tick/8)%2 == 0

	glyph, color := 'ᗝ', ghostColors[gh.index%len(ghostColors)]
	switch gh.state {
	case GhostEdible:
		color = core.ColorBrightBlue
	case GhostEdibleFlashing:
		color = core.ColorBrightBlue
		if flash {
			color = core.ColorBrightWhite
		}
	case GhostEaten:
		glyph, color = '"', core.ColorGray
		if gh.recovering && flash {
			color = core.ColorBrightWhite
		}
	}
	dst.SetColored(x, y, glyph, color)
}

func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, (dst.Height()-len(lines)-2)/2, width+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorBrightWhite)
	}
}
