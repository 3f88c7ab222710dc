package services

import (
	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/store"
)

// TransactionLog appends and reads balance-change records. It never caches;
// every call goes to the store.
type TransactionLog struct {
	store store.Store
	clock store.Clock
}

func NewTransactionLog(st store.Store, clock store.Clock) *TransactionLog {
	return &TransactionLog{store: st, clock: clock}
}

// Append records a balance change. The timestamp is assigned here, at write
// time; the record is immutable from then on.
func (l *TransactionLog) Append(accountID uint, amount float64, transactionType models.TransactionType, comment *string) (models.Transaction, error) {
	timestamp := l.clock.NowMillis()
	id, err := l.store.InsertTransaction(accountID, amount, timestamp, comment, transactionType)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		ID:        id,
		AccountID: accountID,
		Amount:    amount,
		Timestamp: timestamp,
		Comment:   comment,
		Type:      transactionType,
	}, nil
}

// AllOfAccount returns every transaction of an account.
func (l *TransactionLog) AllOfAccount(accountID uint) ([]models.Transaction, error) {
	return l.store.TransactionsByAccount(accountID)
}

// RecentOfAccount returns the newest transactions of an account, newest
// first, capped at limit.
func (l *TransactionLog) RecentOfAccount(accountID uint, limit int) ([]models.Transaction, error) {
	return l.store.TransactionsByAccountWithLimit(accountID, limit)
}

// AllOfAccountByType returns every transaction of an account of one type.
func (l *TransactionLog) AllOfAccountByType(accountID uint, transactionType models.TransactionType) ([]models.Transaction, error) {
	return l.store.TransactionsByAccountAndType(accountID, transactionType)
}

// RecentOfAccountByType returns the newest transactions of one type, newest
// first, capped at limit.
func (l *TransactionLog) RecentOfAccountByType(accountID uint, transactionType models.TransactionType, limit int) ([]models.Transaction, error) {
	return l.store.TransactionsByAccountAndTypeWithLimit(accountID, transactionType, limit)
}
