package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// CreateTransaction добавляет новую транзакцию в начало реестра
func (s *MemoryStorage) CreateTransaction(ctx context.Context, tx *storages.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	stored := *tx
	// Реестр отображается от новых к старым
	s.transactions = append([]*storages.Transaction{&stored}, s.transactions...)

	s.logger.Infof("Created transaction: ID=%s, Type=%s, User=%s", tx.ID, tx.Type, tx.UserID)
	return nil
}

// GetTransaction возвращает транзакцию по ID
func (s *MemoryStorage) GetTransaction(ctx context.Context, txID string) (*storages.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := s.findTransaction(txID)
	if tx == nil {
		return nil, storages.ErrTransactionNotFound
	}

	copied := *tx
	return &copied, nil
}

// ListTransactions возвращает весь реестр от новых к старым
func (s *MemoryStorage) ListTransactions(ctx context.Context) ([]storages.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]storages.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		transactions = append(transactions, *tx)
	}

	return transactions, nil
}

// ListUserTransactions возвращает транзакции пользователя от новых к старым
func (s *MemoryStorage) ListUserTransactions(ctx context.Context, userID string, limit int) ([]storages.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var transactions []storages.Transaction
	for _, tx := range s.transactions {
		if tx.UserID != userID {
			continue
		}
		transactions = append(transactions, *tx)
		if limit > 0 && len(transactions) >= limit {
			break
		}
	}

	return transactions, nil
}

// SettleTransaction атомарно переводит транзакцию в конечный статус и
// изменяет баланс владельца на balanceDelta. Конечные транзакции
// повторно не обрабатываются: двойное зачисление невозможно.
func (s *MemoryStorage) SettleTransaction(ctx context.Context, txID string, status storages.TransactionStatus, balanceDelta decimal.Decimal) (*storages.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.findTransaction(txID)
	if tx == nil {
		return nil, storages.ErrTransactionNotFound
	}
	if tx.Status.Terminal() {
		return nil, storages.ErrTransactionFinalized
	}

	if !balanceDelta.IsZero() {
		user, ok := s.users[tx.UserID]
		if !ok {
			return nil, storages.ErrUserNotFound
		}
		user.Balance = user.Balance.Add(balanceDelta)
		user.UpdatedAt = time.Now()
	}

	tx.Status = status

	s.logger.Infof("Settled transaction: ID=%s, Status=%s, BalanceDelta=%s", txID, status, balanceDelta)

	copied := *tx
	return &copied, nil
}

// CreditBalance атомарно увеличивает баланс пользователя и добавляет
// бонусную транзакцию в реестр
func (s *MemoryStorage) CreditBalance(ctx context.Context, userID string, amount decimal.Decimal, bonus *storages.Transaction) (*storages.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, storages.ErrUserNotFound
	}

	user.Balance = user.Balance.Add(amount)
	user.UpdatedAt = time.Now()

	if bonus.CreatedAt.IsZero() {
		bonus.CreatedAt = time.Now()
	}
	stored := *bonus
	s.transactions = append([]*storages.Transaction{&stored}, s.transactions...)

	s.logger.Infof("Credited balance: UserID=%s, Amount=%s, Bonus=%s", userID, amount, bonus.ID)

	copied := *user
	return &copied, nil
}

// findTransaction ищет транзакцию по ID; вызывающий держит блокировку
func (s *MemoryStorage) findTransaction(txID string) *storages.Transaction {
	for _, tx := range s.transactions {
		if tx.ID == txID {
			return tx
		}
	}
	return nil
}
