//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-gol-grid/gui"
	"github.com/sheikhrachel/go-gol-grid/model"
	"github.com/sheikhrachel/go-gol-grid/sim"
	"github.com/sheikhrachel/go-gol-grid/utils"
)

func main() {
	cfg, err := utils.LoadConfig("config.json")
	if err != nil {
		cfg = utils.DefaultConfig()
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err = cfg.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	rows, cols, err := cfg.GridSize()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	rng := cfg.Rand()
	grid, err := model.CreateGrid(rows, cols, cfg.SeedFor(rng))
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := sim.New(grid, sim.Options{Interval: cfg.TickInterval, Rand: rng})
	defer scheduler.Stop()
	if cfg.AutoStart {
		scheduler.Start(ctx)
	}

	cellSize := int(cfg.CellSize)
	game := gui.New(ctx, scheduler, cellSize, cfg.RandomProbability)

	ebiten.SetWindowTitle("Game Of Life")
	ebiten.SetWindowSize(max(cols*cellSize, 1), max(rows*cellSize, 1))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
