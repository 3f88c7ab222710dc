package services

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/store"
	"go.uber.org/zap"
)

// EconomyRegistry keeps the full set of economies in memory so lookups never
// touch the store. Refresh replaces the set wholesale by swapping an
// immutable snapshot; readers see either the old or the new set, never a
// partial one, and never block.
type EconomyRegistry struct {
	store    store.Store
	snapshot atomic.Pointer[[]models.Economy]
}

func NewEconomyRegistry(st store.Store) *EconomyRegistry {
	registry := &EconomyRegistry{store: st}
	empty := make([]models.Economy, 0)
	registry.snapshot.Store(&empty)
	return registry
}

// Refresh reloads every economy from the store and atomically replaces the
// cached set. Called at bootstrap, on the refresh schedule and on the
// operator refresh command.
func (r *EconomyRegistry) Refresh() error {
	economies, err := r.store.AllEconomies()
	if err != nil {
		return fmt.Errorf("loading economies: %w", err)
	}
	r.snapshot.Store(&economies)
	zap.L().Debug("economy registry refreshed", zap.Int("economies", len(economies)))
	return nil
}

// Create registers a new economy. The cached set is checked first; the
// store's unique constraint stays the final authority, so a race past the
// check still surfaces as ErrAlreadyExists. The new economy becomes visible
// to lookups only after the next Refresh.
func (r *EconomyRegistry) Create(name string, startValue float64) (models.Economy, error) {
	for _, economy := range *r.snapshot.Load() {
		if strings.EqualFold(economy.Name, name) {
			return models.Economy{}, fmt.Errorf("economy %q: %w", name, ErrAlreadyExists)
		}
	}

	id, err := r.store.InsertEconomy(name, startValue)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEntry) {
			return models.Economy{}, fmt.Errorf("economy %q: %w", name, ErrAlreadyExists)
		}
		return models.Economy{}, err
	}

	return models.Economy{
		ID:                 id,
		Name:               name,
		StartValue:         startValue,
		IncreaseMultiplier: 1.0,
		DecreaseMultiplier: 1.0,
	}, nil
}

// ByID looks up an economy in the cached set.
func (r *EconomyRegistry) ByID(id uint) (models.Economy, bool) {
	for _, economy := range *r.snapshot.Load() {
		if economy.ID == id {
			return economy, true
		}
	}
	return models.Economy{}, false
}

// ByName looks up an economy by name, ignoring case.
func (r *EconomyRegistry) ByName(name string) (models.Economy, bool) {
	for _, economy := range *r.snapshot.Load() {
		if strings.EqualFold(economy.Name, name) {
			return economy, true
		}
	}
	return models.Economy{}, false
}

// WithIncreaseMultiplier returns the economies whose increase multiplier
// deviates from 1.0.
func (r *EconomyRegistry) WithIncreaseMultiplier() []models.Economy {
	var result []models.Economy
	for _, economy := range *r.snapshot.Load() {
		if economy.IncreaseMultiplier != 1.0 {
			result = append(result, economy)
		}
	}
	return result
}

// WithDecreaseMultiplier returns the economies whose decrease multiplier
// deviates from 1.0.
func (r *EconomyRegistry) WithDecreaseMultiplier() []models.Economy {
	var result []models.Economy
	for _, economy := range *r.snapshot.Load() {
		if economy.DecreaseMultiplier != 1.0 {
			result = append(result, economy)
		}
	}
	return result
}
