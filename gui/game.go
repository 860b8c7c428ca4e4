//go:build ebiten

package gui

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/model"
	"github.com/sheikhrachel/go-gol-grid/sim"
)

var (
	aliveColor = color.RGBA{R: 26, G: 32, B: 39, A: 255}
	deadColor  = color.RGBA{R: 231, G: 235, B: 240, A: 255}
)

type cell struct {
	i, j int
}

// Game adapts a Scheduler to the ebiten.Game interface.
type Game struct {
	ctx         context.Context
	scheduler   *sim.Scheduler
	cellSize    int
	probability float64
	showStatus  bool

	pressed   bool
	dragged   bool
	pressCell cell
	lastCell  cell
}

// New constructs a Game. ctx bounds every run started from the window.
func New(ctx context.Context, scheduler *sim.Scheduler, cellSize int, probability float64) *Game {
	if cellSize <= 0 {
		cellSize = model.DefaultCellSize
	}
	return &Game{
		ctx:         ctx,
		scheduler:   scheduler,
		cellSize:    cellSize,
		probability: probability,
		showStatus:  true,
	}
}

// Update handles input once per frame. Generations advance on the
// scheduler's own timer, not here.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if !g.scheduler.Stop() {
			g.scheduler.Start(g.ctx)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.scheduler.StepOnce(); err != nil && !errors.Is(err, sim.ErrRunning) {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.scheduler.Randomize(g.probability); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.scheduler.Clear(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}
	return g.handleMouse()
}

// handleMouse turns a click into a toggle and a drag into painting
func (g *Game) handleMouse() error {
	current, ok := g.cellAt(ebiten.CursorPosition())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ok {
		g.pressed, g.dragged = true, false
		g.pressCell, g.lastCell = current, current
		return nil
	}
	if !g.pressed {
		return nil
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !ok || current == g.lastCell {
			return nil
		}
		if !g.dragged {
			g.dragged = true
			if err := g.scheduler.Paint(g.pressCell.i, g.pressCell.j); err != nil {
				return err
			}
		}
		g.lastCell = current
		return g.scheduler.Paint(current.i, current.j)
	}

	g.pressed = false
	if g.dragged {
		return nil
	}
	return g.scheduler.Toggle(g.pressCell.i, g.pressCell.j)
}

// cellAt maps a cursor position to the cell under it
func (g *Game) cellAt(x, y int) (cell, bool) {
	if x < 0 || y < 0 {
		return cell{}, false
	}
	c := cell{i: y / g.cellSize, j: x / g.cellSize}
	grid := g.scheduler.Grid()
	return c, grid.InBounds(c.i, c.j)
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.scheduler.Snapshot()
	screen.Fill(deadColor)

	size := float32(g.cellSize)
	for i := range snap.Grid.Rows() {
		for j := range snap.Grid.Cols() {
			if !snap.Grid.Alive(i, j) {
				continue
			}
			vector.DrawFilledRect(screen, float32(j)*size, float32(i)*size, size-1, size-1, aliveColor, false)
		}
	}

	if g.showStatus {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Gen: %d | Living: %d | %s\n[Space] start/stop [N] step [R] random [C] clear [H] hide",
			snap.Generation, snap.Grid.CountLivingCells(), snap.State))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.scheduler.Grid()
	return max(grid.Cols()*g.cellSize, 1), max(grid.Rows()*g.cellSize, 1)
}
