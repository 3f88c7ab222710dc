package store

import (
	"testing"

	"github.com/lukasringel/economy-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	db.Migrator().DropTable(
		&models.Economy{},
		&models.AccountRecord{},
		&models.UserRecord{},
		&models.ExternalIdentifier{},
		&models.Transaction{},
	)

	st := NewGormStore(db)
	require.NoError(t, st.Migrate())
	return st
}

func TestInsertAccountDuplicateSignal(t *testing.T) {
	st := setupTestStore(t)

	economyID, err := st.InsertEconomy("Gold", 100)
	require.NoError(t, err)

	_, err = st.InsertAccount(1, economyID, 100)
	require.NoError(t, err)

	// The unique index on (user_id, economy_id) rejects the pair; the
	// rejection is the duplicate signal, never an identity.
	_, err = st.InsertAccount(1, economyID, 100)
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	exists, err := st.HasAccount(1, economyID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInsertEconomyDuplicateSignal(t *testing.T) {
	st := setupTestStore(t)

	_, err := st.InsertEconomy("Gold", 100)
	require.NoError(t, err)

	_, err = st.InsertEconomy("Gold", 50)
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	// Names differing only in case hit the lower(name) index.
	_, err = st.InsertEconomy("gold", 50)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	_, err = st.InsertEconomy("GOLD", 50)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestAccountByIDNoRows(t *testing.T) {
	st := setupTestStore(t)

	_, err := st.AccountByID(404)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestUserJoinRows(t *testing.T) {
	st := setupTestStore(t)

	userID, err := st.InsertUser(1700000000000)
	require.NoError(t, err)

	// A user without accounts still yields one row, with nil account
	// columns.
	rows, err := st.UserRowsByID(userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, userID, rows[0].UserID)
	assert.Nil(t, rows[0].AccountID)

	economyID, err := st.InsertEconomy("Gold", 100)
	require.NoError(t, err)
	accountID, err := st.InsertAccount(userID, economyID, 100)
	require.NoError(t, err)

	rows, err = st.UserRowsByID(userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].AccountID)
	assert.Equal(t, accountID, *rows[0].AccountID)
	assert.Equal(t, economyID, *rows[0].AccountEconomyID)
	assert.Equal(t, 100.0, *rows[0].AccountAmount)
}

func TestIdentifierQueries(t *testing.T) {
	st := setupTestStore(t)

	userID, err := st.InsertUser(1000)
	require.NoError(t, err)
	_, err = st.InsertIdentifier(userID, "discord", "123", 1000)
	require.NoError(t, err)
	inactiveID, err := st.InsertIdentifier(userID, "teamspeak", "old", 1000)
	require.NoError(t, err)

	// Deactivated identifiers are retained but excluded from loads.
	require.NoError(t, st.db.Model(&models.ExternalIdentifier{}).
		Where("id = ?", inactiveID).Update("active", false).Error)

	identifiers, err := st.ActiveIdentifiersByUser(userID)
	require.NoError(t, err)
	require.Len(t, identifiers, 1)
	assert.Equal(t, "discord", identifiers[0].Key)

	rows, err := st.UserRowsByIdentifier("discord", "123")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, userID, rows[0].UserID)

	// Matching on an inactive identifier finds nothing.
	rows, err = st.UserRowsByIdentifier("teamspeak", "old")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
