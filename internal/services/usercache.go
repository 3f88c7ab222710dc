package services

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/store"
	"golang.org/x/sync/singleflight"
)

// UserCache serves user-by-id reads from memory. Entries expire after the
// configured TTL; concurrent misses for the same id collapse into a single
// store round-trip. Everything else (identifier lookup, bulk scans) bypasses
// the cache.
type UserCache struct {
	store    store.Store
	registry *EconomyRegistry
	clock    store.Clock
	ttl      time.Duration

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[uint]cacheEntry
}

type cacheEntry struct {
	user      models.User
	expiresAt time.Time
}

func NewUserCache(st store.Store, registry *EconomyRegistry, clock store.Clock, ttl time.Duration) *UserCache {
	return &UserCache{
		store:    st,
		registry: registry,
		clock:    clock,
		ttl:      ttl,
		entries:  make(map[uint]cacheEntry),
	}
}

// ByID returns the assembled user, loading it from the store on a cache
// miss. A user that does not exist is ErrNotFound and is not cached.
func (c *UserCache) ByID(id uint) (models.User, error) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if ok {
		if time.Now().Before(entry.expiresAt) {
			return entry.user, nil
		}
		// Evict the stale entry so the map does not grow with every id
		// ever read; a concurrent reload may already have replaced it.
		c.mu.Lock()
		if current, ok := c.entries[id]; ok && !time.Now().Before(current.expiresAt) {
			delete(c.entries, id)
		}
		c.mu.Unlock()
	}

	value, err, _ := c.group.Do(strconv.FormatUint(uint64(id), 10), func() (interface{}, error) {
		user, err := c.loadByID(id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[id] = cacheEntry{user: user, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return user, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return value.(models.User), nil
}

// InvalidateAll drops every cached entry. Called at bootstrap and on the
// operator refresh command.
func (c *UserCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[uint]cacheEntry)
	c.mu.Unlock()
}

// ByIdentifier resolves a user through an active external identifier. Always
// hits the store; identifiers are not the cache key.
func (c *UserCache) ByIdentifier(key, value string) (models.User, error) {
	rows, err := c.store.UserRowsByIdentifier(key, value)
	if err != nil {
		return models.User{}, err
	}
	if len(rows) == 0 {
		return models.User{}, fmt.Errorf("user with identifier %s=%s: %w", key, value, ErrNotFound)
	}
	return c.assemble(rows)
}

// Suspended lists every suspended user. High-cost scan, uncached.
func (c *UserCache) Suspended() ([]models.User, error) {
	rows, err := c.store.UserRowsBySuspended()
	if err != nil {
		return nil, err
	}
	return c.assembleAll(rows)
}

// CreatedBefore lists the users created before the timestamp. High-cost
// scan, uncached.
func (c *UserCache) CreatedBefore(timestamp int64) ([]models.User, error) {
	rows, err := c.store.UserRowsByCreatedBefore(timestamp)
	if err != nil {
		return nil, err
	}
	return c.assembleAll(rows)
}

// CreatedAfter lists the users created after the timestamp. High-cost scan,
// uncached.
func (c *UserCache) CreatedAfter(timestamp int64) ([]models.User, error) {
	rows, err := c.store.UserRowsByCreatedAfter(timestamp)
	if err != nil {
		return nil, err
	}
	return c.assembleAll(rows)
}

// Create inserts a new user together with its external identifiers.
// identifierPairs alternates key, value; an odd length fails with
// ErrMalformedInput before anything is written. New users start unsuspended
// and without accounts.
func (c *UserCache) Create(identifierPairs ...string) (models.User, error) {
	if len(identifierPairs)%2 != 0 {
		return models.User{}, fmt.Errorf("identifier pairs must alternate key and value, got %d values: %w",
			len(identifierPairs), ErrMalformedInput)
	}

	createdAt := c.clock.NowMillis()
	userID, err := c.store.InsertUser(createdAt)
	if err != nil {
		return models.User{}, err
	}

	identifiers := make([]models.ExternalIdentifier, 0, len(identifierPairs)/2)
	for i := 0; i < len(identifierPairs); i += 2 {
		key, value := identifierPairs[i], identifierPairs[i+1]
		identifierID, err := c.store.InsertIdentifier(userID, key, value, createdAt)
		if err != nil {
			return models.User{}, fmt.Errorf("inserting identifier %s for user %d: %w", key, userID, err)
		}
		identifiers = append(identifiers, models.ExternalIdentifier{
			ID:        identifierID,
			UserID:    userID,
			Key:       key,
			Value:     value,
			Active:    true,
			CreatedAt: createdAt,
		})
	}

	return models.User{
		ID:                  userID,
		ExternalIdentifiers: identifiers,
		Accounts:            []models.Account{},
		Suspended:           false,
		CreatedAt:           createdAt,
	}, nil
}

func (c *UserCache) loadByID(id uint) (models.User, error) {
	rows, err := c.store.UserRowsByID(id)
	if err != nil {
		return models.User{}, err
	}
	if len(rows) == 0 {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return c.assemble(rows)
}

// assemble builds one user from join rows belonging to a single user id.
// Accounts whose economy cannot be resolved through the registry are dropped
// from the result, not surfaced as errors.
func (c *UserCache) assemble(rows []store.UserAccountRow) (models.User, error) {
	first := rows[0]

	identifiers, err := c.store.ActiveIdentifiersByUser(first.UserID)
	if err != nil {
		return models.User{}, err
	}

	accounts := make([]models.Account, 0, len(rows))
	for _, row := range rows {
		if row.AccountID == nil || row.AccountEconomyID == nil || row.AccountAmount == nil {
			continue
		}
		economy, ok := c.registry.ByID(*row.AccountEconomyID)
		if !ok {
			continue
		}
		accounts = append(accounts, models.Account{ID: *row.AccountID, Economy: economy, Amount: *row.AccountAmount})
	}

	return models.User{
		ID:                  first.UserID,
		ExternalIdentifiers: identifiers,
		Accounts:            accounts,
		Suspended:           first.Suspended,
		CreatedAt:           first.CreatedAt,
	}, nil
}

// assembleAll groups join rows by user id and assembles each group.
func (c *UserCache) assembleAll(rows []store.UserAccountRow) ([]models.User, error) {
	grouped := make(map[uint][]store.UserAccountRow)
	for _, row := range rows {
		grouped[row.UserID] = append(grouped[row.UserID], row)
	}

	ids := make([]uint, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]models.User, 0, len(grouped))
	for _, id := range ids {
		user, err := c.assemble(grouped[id])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
