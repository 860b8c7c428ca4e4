// Package sim drives a grid through generations on a fixed interval.
//
// A Scheduler is either Stopped or Running. While Running it steps the grid
// once, then waits Interval before the next step, so the period drifts by the
// time a step takes and two steps never overlap. Stop is exact: once it
// returns, no further generation is committed.
package sim

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/model"
)

// DefaultInterval is the wait between two generations
const DefaultInterval = 100 * time.Millisecond

// ErrRunning is returned by operations that need a stopped scheduler
var ErrRunning = errors.New("scheduler is running")

// State of the simulation loop
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	}
	return "Unknown"
}

// Snapshot is a consistent view of the scheduler at one point in time
type Snapshot struct {
	Grid       *model.Grid
	Generation int
	State      State
}

// Options tune a Scheduler. Zero values take defaults.
type Options struct {
	Interval time.Duration
	// OnChange is called after every committed change, in commit order.
	// It must not call back into the Scheduler.
	OnChange func(Snapshot)
	// Rand feeds Randomize; nil uses the global source
	Rand *rand.Rand
}

// Scheduler owns the current grid and the run flag
type Scheduler struct {
	interval time.Duration
	onChange func(Snapshot)

	mu         sync.Mutex
	grid       *model.Grid
	generation int
	state      State
	epoch      uint64 // bumped whenever a run ends, so a stale loop cannot commit
	cancel     context.CancelFunc
	rng        *rand.Rand

	notifyMu sync.Mutex
}

// New returns a stopped Scheduler holding grid
func New(grid *model.Grid, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if grid == nil {
		grid, _ = model.NewGrid(0, 0)
	}
	return &Scheduler{
		interval: opts.Interval,
		onChange: opts.OnChange,
		grid:     grid,
		rng:      opts.Rand,
	}
}

// Start begins stepping the grid until Stop is called or ctx is done.
// It reports false if the scheduler was already running.
func (s *Scheduler) Start(ctx context.Context) bool {
	s.mu.Lock()
	if s.state == Running {
		s.mu.Unlock()
		return false
	}
	s.state = Running
	epoch := s.epoch
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.commit()

	go s.loop(runCtx, epoch)
	return true
}

// Stop halts the loop. It reports false if the scheduler was not running.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return false
	}
	s.stopLocked()
	s.commit()
	return true
}

// StepOnce advances a stopped grid by a single generation
func (s *Scheduler) StepOnce() error {
	s.mu.Lock()
	if s.state == Running {
		s.mu.Unlock()
		return errors.Wrap(ErrRunning, "[StepOnce] stop the scheduler first")
	}
	s.grid = model.Step(s.grid)
	s.generation++
	s.commit()
	return nil
}

// Toggle flips cell (i, j)
func (s *Scheduler) Toggle(i, j int) error {
	return s.update(func(g *model.Grid) (*model.Grid, error) { return g.Toggle(i, j) })
}

// Paint brings cell (i, j) to life
func (s *Scheduler) Paint(i, j int) error {
	return s.update(func(g *model.Grid) (*model.Grid, error) { return g.Paint(i, j) })
}

// SetCell sets cell (i, j) to alive
func (s *Scheduler) SetCell(i, j int, alive bool) error {
	return s.update(func(g *model.Grid) (*model.Grid, error) { return g.Set(i, j, alive) })
}

// Clear stops the scheduler and kills every cell
func (s *Scheduler) Clear() error {
	return s.Reseed(model.AllDead{})
}

// Randomize stops the scheduler and brings each cell to life with probability p
func (s *Scheduler) Randomize(p float64) error {
	s.mu.Lock()
	rng := s.rng
	s.mu.Unlock()
	return s.Reseed(model.Random{Probability: p, Rand: rng})
}

// Reseed stops the scheduler and replaces the grid with one of the same
// dimensions populated by seed
func (s *Scheduler) Reseed(seed model.Seed) error {
	s.mu.Lock()
	return s.replaceLocked("Reseed", s.grid.Rows(), s.grid.Cols(), seed)
}

// Resize stops the scheduler and replaces the grid with an all-dead one of
// the new dimensions
func (s *Scheduler) Resize(rows, cols int) error {
	s.mu.Lock()
	return s.replaceLocked("Resize", rows, cols, model.AllDead{})
}

// replaceLocked must be called with mu held and releases it
func (s *Scheduler) replaceLocked(op string, rows, cols int, seed model.Seed) error {
	next, err := model.CreateGrid(rows, cols, seed)
	if err != nil {
		s.mu.Unlock()
		return errors.Wrapf(err, "[%s] grid left unchanged", op)
	}
	if s.state == Running {
		s.stopLocked()
	}
	s.grid = next
	s.generation = 0
	s.commit()
	return nil
}

// Snapshot returns the current grid, generation and state
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Grid returns the current generation
func (s *Scheduler) Grid() *model.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// State returns whether the loop is running
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) update(apply func(*model.Grid) (*model.Grid, error)) error {
	s.mu.Lock()
	next, err := apply(s.grid)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.grid = next
	s.commit()
	return nil
}

func (s *Scheduler) loop(ctx context.Context, epoch uint64) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.halt(epoch)
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			s.halt(epoch)
			return
		}
		if !s.tick(epoch) {
			return
		}
		timer.Reset(s.interval)
	}
}

// tick commits one generation unless the run that scheduled it has ended
func (s *Scheduler) tick(epoch uint64) bool {
	s.mu.Lock()
	if s.epoch != epoch || s.state != Running {
		s.mu.Unlock()
		return false
	}
	s.grid = model.Step(s.grid)
	s.generation++
	s.commit()
	return true
}

// halt stops the run identified by epoch after its context was cancelled
func (s *Scheduler) halt(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.state != Running {
		s.mu.Unlock()
		return
	}
	s.stopLocked()
	s.commit()
}

func (s *Scheduler) stopLocked() {
	s.state = Stopped
	s.epoch++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Scheduler) snapshotLocked() Snapshot {
	return Snapshot{Grid: s.grid, Generation: s.generation, State: s.state}
}

// commit must be called with mu held. It releases mu and delivers the new
// snapshot, serialized so observers see changes in commit order.
func (s *Scheduler) commit() {
	snap := s.snapshotLocked()
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	if s.onChange != nil {
		s.onChange(snap)
	}
}
