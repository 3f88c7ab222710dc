package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshSchedulerTicks(t *testing.T) {
	_, st := setupTestStore()
	counting := &countingStore{Store: st}
	registry := NewEconomyRegistry(counting)

	scheduler := NewRefreshScheduler(registry, 10*time.Millisecond)
	scheduler.Start()

	assert.Eventually(t, func() bool {
		return counting.allEconomies.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	scheduler.Stop()
	settled := counting.allEconomies.Load()

	// No further refreshes after Stop returns.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, counting.allEconomies.Load())
}
