package services

import (
	"sync/atomic"
	"time"

	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestStore opens the shared in-memory sqlite database with a clean
// schema and returns the gorm handle alongside the store.
func setupTestStore() (*gorm.DB, *store.GormStore) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(
		&models.Economy{},
		&models.AccountRecord{},
		&models.UserRecord{},
		&models.ExternalIdentifier{},
		&models.Transaction{},
	)

	st := store.NewGormStore(db)
	if err := st.Migrate(); err != nil {
		panic("failed to migrate database")
	}

	return db, st
}

// tickingClock hands out strictly increasing epoch millis.
type tickingClock struct {
	now atomic.Int64
}

func newTickingClock(start int64) *tickingClock {
	clock := &tickingClock{}
	clock.now.Store(start)
	return clock
}

func (c *tickingClock) NowMillis() int64 {
	return c.now.Add(1)
}

// countingStore wraps a Store and counts selected calls; loadDelay slows
// UserRowsByID down to widen race windows in collapse tests.
type countingStore struct {
	store.Store

	allEconomies atomic.Int32
	userRowsByID atomic.Int32
	insertUser   atomic.Int32
	loadDelay    time.Duration
}

func (c *countingStore) AllEconomies() ([]models.Economy, error) {
	c.allEconomies.Add(1)
	return c.Store.AllEconomies()
}

func (c *countingStore) UserRowsByID(id uint) ([]store.UserAccountRow, error) {
	c.userRowsByID.Add(1)
	if c.loadDelay > 0 {
		time.Sleep(c.loadDelay)
	}
	return c.Store.UserRowsByID(id)
}

func (c *countingStore) InsertUser(createdAt int64) (uint, error) {
	c.insertUser.Add(1)
	return c.Store.InsertUser(createdAt)
}
