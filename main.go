package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-grid/sim"
	"github.com/sheikhrachel/go-gol-grid/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()
	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frames := make(chan sim.Snapshot, 1)
	g, err := initializeGame(config, os.Stdout, latest(frames))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(g)

	if err = run(ctx, g, frames); err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Println("\nShutting down gracefully...")
	g.displayFinalStats()
}

// run renders snapshots until ctx is done or the generation limit is reached
func run(ctx context.Context, g *game, frames <-chan sim.Snapshot) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()
		g.scheduler.Stop()
		return nil
	})

	eg.Go(func() error {
		if err := g.render(g.scheduler.Snapshot()); err != nil {
			return err
		}
		if g.config.AutoStart {
			g.scheduler.Start(ctx)
		}
		for {
			select {
			case <-ctx.Done():
				return nil
			case snap := <-frames:
				if err := g.render(snap); err != nil {
					return err
				}
				if g.reachedLimit(snap) {
					fmt.Fprintf(g.out, "\nReached maximum generations limit (%d)\n", g.config.MaxGenerations)
					cancel()
					return nil
				}
				if !g.config.AutoRestart {
					continue
				}
				if restart, reason := g.checkRestartConditions(snap); restart {
					if err := g.restartGame(ctx, reason); err != nil {
						return err
					}
				}
			}
		}
	})

	return eg.Wait()
}

// latest returns an observer that keeps only the newest snapshot in frames,
// so a slow terminal skips generations instead of stalling the scheduler
func latest(frames chan sim.Snapshot) func(sim.Snapshot) {
	return func(snap sim.Snapshot) {
		for {
			select {
			case frames <- snap:
				return
			default:
			}
			select {
			case <-frames:
			default:
			}
		}
	}
}
