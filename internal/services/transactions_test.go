package services

import (
	"testing"

	"github.com/lukasringel/economy-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionAppend(t *testing.T) {
	_, st := setupTestStore()
	clock := newTickingClock(1700000000000)
	log := NewTransactionLog(st, clock)

	comment := "starter bonus"
	created, err := log.Append(1, 25, models.TransactionTypeIncrease, &comment)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, uint(1), created.AccountID)
	assert.Equal(t, 25.0, created.Amount)
	assert.Equal(t, int64(1700000000001), created.Timestamp)
	assert.Equal(t, models.TransactionTypeIncrease, created.Type)
	require.True(t, created.HasComment())
	assert.Equal(t, "starter bonus", *created.Comment)
}

func TestTransactionQueries(t *testing.T) {
	_, st := setupTestStore()
	log := NewTransactionLog(st, newTickingClock(1000))

	for i := 1; i <= 3; i++ {
		_, err := log.Append(1, float64(i), models.TransactionTypeIncrease, nil)
		require.NoError(t, err)
	}
	_, err := log.Append(1, 99, models.TransactionTypeDecrease, nil)
	require.NoError(t, err)
	_, err = log.Append(2, 7, models.TransactionTypeIncrease, nil)
	require.NoError(t, err)

	all, err := log.AllOfAccount(1)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// Recent is newest first, capped at limit.
	recent, err := log.RecentOfAccount(1, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 99.0, recent[0].Amount)
	assert.Equal(t, 3.0, recent[1].Amount)

	increases, err := log.AllOfAccountByType(1, models.TransactionTypeIncrease)
	require.NoError(t, err)
	assert.Len(t, increases, 3)

	recentIncreases, err := log.RecentOfAccountByType(1, models.TransactionTypeIncrease, 1)
	require.NoError(t, err)
	require.Len(t, recentIncreases, 1)
	assert.Equal(t, 3.0, recentIncreases[0].Amount)
}
