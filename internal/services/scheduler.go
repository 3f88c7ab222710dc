package services

import (
	"time"

	"go.uber.org/zap"
)

// RefreshScheduler drives the periodic economy registry reload on a ticker
// independent of request handling. Refresh errors are logged and the next
// tick retries; the stale snapshot stays served in between.
type RefreshScheduler struct {
	registry *EconomyRegistry
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewRefreshScheduler(registry *EconomyRegistry, interval time.Duration) *RefreshScheduler {
	return &RefreshScheduler{
		registry: registry,
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start launches the ticker goroutine.
func (s *RefreshScheduler) Start() {
	go s.run()
}

func (s *RefreshScheduler) run() {
	defer close(s.doneChan)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.registry.Refresh(); err != nil {
				zap.L().Error("scheduled economy refresh failed", zap.Error(err))
			}
		case <-s.stopChan:
			return
		}
	}
}

// Stop terminates the ticker goroutine and waits for it to exit.
func (s *RefreshScheduler) Stop() {
	close(s.stopChan)
	<-s.doneChan
}
