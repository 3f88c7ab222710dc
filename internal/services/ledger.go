package services

import (
	"errors"
	"fmt"

	"github.com/lukasringel/economy-service/internal/models"
	"github.com/lukasringel/economy-service/internal/store"
	"go.uber.org/zap"
)

// AccountLedger creates accounts and applies balance mutations. Every
// mutation is recorded in the transaction log.
//
// Mutations are blind read-modify-writes: the new balance is computed from
// the account snapshot the caller supplies, without re-reading the store.
// Concurrent mutations on the same account can lose updates; callers that
// care must serialize per account.
type AccountLedger struct {
	store        store.Store
	registry     *EconomyRegistry
	transactions *TransactionLog
}

func NewAccountLedger(st store.Store, registry *EconomyRegistry, transactions *TransactionLog) *AccountLedger {
	return &AccountLedger{store: st, registry: registry, transactions: transactions}
}

// CreateAccount resolves the economy through the registry and opens an
// account for the user. Fails with ErrNotFound for an unknown economy id.
func (l *AccountLedger) CreateAccount(userID, economyID uint) (models.Account, error) {
	economy, ok := l.registry.ByID(economyID)
	if !ok {
		return models.Account{}, fmt.Errorf("economy %d: %w", economyID, ErrNotFound)
	}
	return l.CreateAccountForEconomy(userID, economy)
}

// CreateAccountForEconomy opens an account with balance = the economy's start
// value. The existence pre-check is an optimization; the store's unique
// constraint on (user, economy) is the final authority, and its rejection is
// surfaced as the same ErrAlreadyExists the pre-check produces.
func (l *AccountLedger) CreateAccountForEconomy(userID uint, economy models.Economy) (models.Account, error) {
	exists, err := l.store.HasAccount(userID, economy.ID)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return models.Account{}, fmt.Errorf("account of user %d for economy %q: %w", userID, economy.Name, ErrAlreadyExists)
	}

	id, err := l.store.InsertAccount(userID, economy.ID, economy.StartValue)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEntry) {
			return models.Account{}, fmt.Errorf("account of user %d for economy %q: %w", userID, economy.Name, ErrAlreadyExists)
		}
		return models.Account{}, err
	}

	zap.L().Info("account created",
		zap.Uint("account_id", id),
		zap.Uint("user_id", userID),
		zap.String("economy", economy.Name))

	return models.Account{ID: id, Economy: economy, Amount: economy.StartValue}, nil
}

// Increase adds amount to the account balance and logs an INCREASE
// transaction carrying the raw magnitude and the optional comment.
func (l *AccountLedger) Increase(account models.Account, amount float64, comment *string) (models.Account, error) {
	return l.mutate(account, account.Amount+amount, amount, models.TransactionTypeIncrease, comment)
}

// Decrease subtracts amount from the account balance and logs a DECREASE
// transaction carrying the raw magnitude and the optional comment.
func (l *AccountLedger) Decrease(account models.Account, amount float64, comment *string) (models.Account, error) {
	return l.mutate(account, account.Amount-amount, amount, models.TransactionTypeDecrease, comment)
}

func (l *AccountLedger) mutate(account models.Account, worth, amount float64, transactionType models.TransactionType, comment *string) (models.Account, error) {
	if err := l.store.UpdateAccountAmount(account.ID, worth); err != nil {
		return models.Account{}, err
	}
	if _, err := l.transactions.Append(account.ID, amount, transactionType, comment); err != nil {
		return models.Account{}, fmt.Errorf("recording transaction for account %d: %w", account.ID, err)
	}
	return models.Account{ID: account.ID, Economy: account.Economy, Amount: worth}, nil
}

// ByID loads an account and hydrates its economy from the registry. A
// missing row or an unresolvable economy is ErrNotFound.
func (l *AccountLedger) ByID(id uint) (models.Account, error) {
	record, err := l.store.AccountByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return models.Account{}, fmt.Errorf("account %d: %w", id, ErrNotFound)
		}
		return models.Account{}, err
	}
	economy, ok := l.registry.ByID(record.EconomyID)
	if !ok {
		return models.Account{}, fmt.Errorf("economy %d of account %d: %w", record.EconomyID, id, ErrNotFound)
	}
	return models.Account{ID: record.ID, Economy: economy, Amount: record.Amount}, nil
}

// ByEconomyID lists every account of an economy. High-cost scan; expected to
// run infrequently or off-peak.
func (l *AccountLedger) ByEconomyID(economyID uint) ([]models.Account, error) {
	economy, ok := l.registry.ByID(economyID)
	if !ok {
		return nil, fmt.Errorf("economy %d: %w", economyID, ErrNotFound)
	}
	return l.ByEconomy(economy)
}

// ByEconomy lists every account of an economy. High-cost scan.
func (l *AccountLedger) ByEconomy(economy models.Economy) ([]models.Account, error) {
	records, err := l.store.AccountsByEconomy(economy.ID)
	if err != nil {
		return nil, err
	}
	return hydrate(records, economy), nil
}

// AboveAmountByEconomyID lists the accounts of an economy with a balance
// above amount. High-cost scan.
func (l *AccountLedger) AboveAmountByEconomyID(economyID uint, amount float64) ([]models.Account, error) {
	economy, ok := l.registry.ByID(economyID)
	if !ok {
		return nil, fmt.Errorf("economy %d: %w", economyID, ErrNotFound)
	}
	return l.AboveAmount(economy, amount)
}

// AboveAmount lists the accounts of an economy with a balance above amount.
func (l *AccountLedger) AboveAmount(economy models.Economy, amount float64) ([]models.Account, error) {
	records, err := l.store.AccountsAboveAmount(economy.ID, amount)
	if err != nil {
		return nil, err
	}
	return hydrate(records, economy), nil
}

// UnderAmountByEconomyID lists the accounts of an economy with a balance
// under amount. High-cost scan.
func (l *AccountLedger) UnderAmountByEconomyID(economyID uint, amount float64) ([]models.Account, error) {
	economy, ok := l.registry.ByID(economyID)
	if !ok {
		return nil, fmt.Errorf("economy %d: %w", economyID, ErrNotFound)
	}
	return l.UnderAmount(economy, amount)
}

// UnderAmount lists the accounts of an economy with a balance under amount.
func (l *AccountLedger) UnderAmount(economy models.Economy, amount float64) ([]models.Account, error) {
	records, err := l.store.AccountsUnderAmount(economy.ID, amount)
	if err != nil {
		return nil, err
	}
	return hydrate(records, economy), nil
}

func hydrate(records []models.AccountRecord, economy models.Economy) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, record := range records {
		accounts = append(accounts, models.Account{ID: record.ID, Economy: economy, Amount: record.Amount})
	}
	return accounts
}
