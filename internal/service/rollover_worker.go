package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ExpiredCycleRoller closes cycles whose window has passed
type ExpiredCycleRoller interface {
	RollOverExpired(asOf time.Time) (int, error)
}

// RolloverWorker is a background worker that periodically rolls over expired cycles
type RolloverWorker struct {
	roller   ExpiredCycleRoller
	logger   zerolog.Logger
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce *sync.Once
	mu       sync.Mutex
	running  bool
}

// RolloverWorkerConfig holds configuration for the rollover worker
type RolloverWorkerConfig struct {
	Interval time.Duration // How often to look for expired cycles
}

// DefaultRolloverWorkerConfig returns sensible defaults
func DefaultRolloverWorkerConfig() RolloverWorkerConfig {
	return RolloverWorkerConfig{
		Interval: 1 * time.Hour,
	}
}

// NewRolloverWorker creates a new rollover worker
func NewRolloverWorker(roller ExpiredCycleRoller, logger zerolog.Logger, config RolloverWorkerConfig) *RolloverWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultRolloverWorkerConfig().Interval
	}

	return &RolloverWorker{
		roller:   roller,
		logger:   logger.With().Str("component", "rollover_worker").Logger(),
		interval: config.Interval,
		now:      time.Now,
	}
}

// Start begins the background rollover loop
func (w *RolloverWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	// Fresh channels per run so the worker can be restarted after Stop
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.stopOnce = &sync.Once{}
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("Starting rollover worker")

	go w.run(ctx, stopCh, doneCh)
}

// Stop gracefully stops the rollover worker. It is safe to call concurrently.
func (w *RolloverWorker) Stop() {
	w.mu.Lock()
	if w.stopCh == nil {
		w.mu.Unlock()
		return
	}
	stopCh, doneCh, once := w.stopCh, w.doneCh, w.stopOnce
	w.mu.Unlock()

	once.Do(func() {
		w.logger.Info().Msg("Stopping rollover worker")
		close(stopCh)
	})
	<-doneCh
	w.logger.Info().Msg("Rollover worker stopped")
}

func (w *RolloverWorker) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	w.rollOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.setRunning(false)
			return
		case <-stopCh:
			w.setRunning(false)
			return
		case <-ticker.C:
			w.rollOnce()
		}
	}
}

func (w *RolloverWorker) rollOnce() {
	start := time.Now()

	rolled, err := w.roller.RollOverExpired(w.now())
	if err != nil {
		w.logger.Error().Err(err).Int("rolled", rolled).Msg("Some cycles failed to roll over")
	}

	if rolled > 0 || err != nil {
		w.logger.Info().
			Int("rolled", rolled).
			Dur("elapsed", time.Since(start)).
			Msg("Completed cycle rollover")
	}
}

func (w *RolloverWorker) setRunning(running bool) {
	w.mu.Lock()
	w.running = running
	w.mu.Unlock()
}

// IsRunning returns whether the worker is currently running
func (w *RolloverWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
