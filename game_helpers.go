package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-gol-grid/model"
	"github.com/sheikhrachel/go-gol-grid/sim"
	"github.com/sheikhrachel/go-gol-grid/utils"
)

// game bundles what the render loop needs between frames
type game struct {
	config    utils.Config
	scheduler *sim.Scheduler
	renderer  *model.TerminalRenderer
	stats     *utils.Stats
	history   model.History
	out       io.Writer
	rng       *rand.Rand

	stagnantCount  int
	restarts       int
	lastFrameTime  time.Time
	lastRecordedAt int // generation last added to history, -1 when empty
}

// initializeGame sizes and seeds the first grid
func initializeGame(config utils.Config, out io.Writer, onChange func(sim.Snapshot)) (*game, error) {
	rows, cols, err := config.GridSize()
	if err != nil {
		return nil, err
	}

	rng := config.Rand()
	grid, err := model.CreateGrid(rows, cols, config.SeedFor(rng))
	if err != nil {
		return nil, err
	}

	scheduler := sim.New(grid, sim.Options{
		Interval: config.TickInterval,
		OnChange: onChange,
		Rand:     rng,
	})

	return &game{
		config:         config,
		scheduler:      scheduler,
		renderer:       model.NewTerminalRenderer(out, model.NewFramePool()),
		stats:          utils.NewStats(),
		out:            out,
		rng:            rng,
		lastFrameTime:  time.Now(),
		lastRecordedAt: -1,
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	grid := g.scheduler.Grid()
	fmt.Fprintf(g.out, "Seed: %s | Interval: %v | Auto restart: %v\n",
		g.config.SeedMode, g.config.TickInterval, g.config.AutoRestart)
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), grid.CountLivingCells())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// updateGameState records the snapshot and reports its status line
func (g *game) updateGameState(snap sim.Snapshot) (status string, stagnant bool) {
	var (
		grid        = snap.Grid
		livingCells = grid.CountLivingCells()
		now         = time.Now()
	)
	g.stats.Update(snap.Generation, livingCells, grid.Rows()*grid.Cols(), now.Sub(g.lastFrameTime))
	g.lastFrameTime = now

	// state changes and cell edits repeat a generation number
	if snap.Generation != g.lastRecordedAt {
		stagnant = g.history.IsStagnant(grid)
		g.history.Record(grid)
		g.lastRecordedAt = snap.Generation
		if stagnant {
			g.stagnantCount++
		} else {
			g.stagnantCount = 0
		}
	}

	status = snap.State.String()
	switch {
	case livingCells == 0:
		status = "Extinct"
	case stagnant:
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	return status, stagnant
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(snap sim.Snapshot, status string) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		snap.Generation, g.stats.ActiveCells, g.stats.Density, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	if g.restarts > 0 {
		fmt.Fprintf(g.out, "Restarts: %d | Generations since restart: %d\n",
			g.restarts, snap.Generation)
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func (g *game) checkRestartConditions(snap sim.Snapshot) (bool, string) {
	if snap.Generation == 0 {
		return false, ""
	}
	if snap.Grid.CountLivingCells() == 0 {
		return true, "extinction"
	}
	if g.stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// reachedLimit reports whether max_generations has been hit
func (g *game) reachedLimit(snap sim.Snapshot) bool {
	return g.config.MaxGenerations > 0 && snap.Generation >= g.config.MaxGenerations
}

// restartGame reseeds the board and starts it again
func (g *game) restartGame(ctx context.Context, reason string) error {
	fmt.Fprintf(g.out, "Restarting due to %s...\n", reason)

	if err := g.scheduler.Reseed(g.config.SeedFor(g.rng)); err != nil {
		return err
	}
	g.history.Reset()
	g.lastRecordedAt = -1
	g.stagnantCount = 0
	g.restarts++
	g.scheduler.Start(ctx)
	return nil
}

// render clears the terminal and draws one snapshot with its status lines
func (g *game) render(snap sim.Snapshot) error {
	status, _ := g.updateGameState(snap)
	if err := g.renderer.Clear(); err != nil {
		return err
	}
	g.displayGameStatus(snap, status)
	return g.renderer.Display(snap.Grid)
}

// displayFinalStats prints the summary shown on exit
func (g *game) displayFinalStats() {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds\n",
		g.stats.TotalGenerations, g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
