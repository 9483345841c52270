package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mdrafiulislam3103/axcrypto/internal/kafka"
	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// AdminService сервисный слой консоли администратора: одобрение и
// отклонение заявок, зачисление бонусов, настройки способов оплаты
type AdminService struct {
	storage       storages.Storage
	kafkaProducer *kafka.Producer
	logger        *logrus.Logger
}

// NewAdminService создает новый экземпляр сервиса
func NewAdminService(
	storage storages.Storage,
	kafkaProducer *kafka.Producer,
	logger *logrus.Logger,
) *AdminService {
	return &AdminService{
		storage:       storage,
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

// ApproveTransaction переводит заявку из Pending в Approved.
// Для типов Buy и Deposit баланс владельца увеличивается ровно на
// сумму заявки; смена статуса и зачисление применяются атомарно.
// Уже обработанная заявка возвращает ErrTransactionFinalized.
func (s *AdminService) ApproveTransaction(ctx context.Context, txID string) (*storages.Transaction, error) {
	tx, err := s.storage.GetTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}

	balanceDelta := decimal.Zero
	if tx.Type.CreditsBalance() {
		balanceDelta = tx.Amount
	}

	settled, err := s.storage.SettleTransaction(ctx, txID, storages.TransactionStatusApproved, balanceDelta)
	if err != nil {
		return nil, err
	}

	// Отправляем событие в Kafka
	if err := s.kafkaProducer.SendLedgerEvent(ctx, kafka.EventTransactionApproved, settled); err != nil {
		s.logger.Warnf("Failed to send Kafka notification: %v", err)
	}

	s.logger.Infof("Transaction approved: ID=%s, Type=%s, BalanceDelta=%s", txID, tx.Type, balanceDelta)
	return settled, nil
}

// RejectTransaction переводит заявку из Pending в Rejected.
// Баланс не меняется независимо от типа заявки.
func (s *AdminService) RejectTransaction(ctx context.Context, txID string) (*storages.Transaction, error) {
	settled, err := s.storage.SettleTransaction(ctx, txID, storages.TransactionStatusRejected, decimal.Zero)
	if err != nil {
		return nil, err
	}

	// Отправляем событие в Kafka
	if err := s.kafkaProducer.SendLedgerEvent(ctx, kafka.EventTransactionRejected, settled); err != nil {
		s.logger.Warnf("Failed to send Kafka notification: %v", err)
	}

	s.logger.Infof("Transaction rejected: ID=%s", txID)
	return settled, nil
}

// CreditUser зачисляет бонус на баланс пользователя и добавляет в
// реестр одобренную бонусную транзакцию. Сумма приходит строкой и
// должна разбираться как строго положительное число: некорректный
// ввод — явная ошибка, а не молчаливый no-op.
func (s *AdminService) CreditUser(ctx context.Context, userID, rawAmount string) (*storages.User, *storages.Transaction, error) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid credit amount: %q", rawAmount)
	}
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("credit amount must be positive")
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	bonus := &storages.Transaction{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		UserName: user.Name,
		Date:     time.Now().Format("2006-01-02"),
		Type:     storages.TransactionTypeBonus,
		Amount:   amount,
		Status:   storages.TransactionStatusApproved,
		Details:  "Admin Credit",
	}

	updated, err := s.storage.CreditBalance(ctx, userID, amount, bonus)
	if err != nil {
		return nil, nil, err
	}

	// Отправляем событие в Kafka
	if err := s.kafkaProducer.SendLedgerEvent(ctx, kafka.EventUserCredited, bonus); err != nil {
		s.logger.Warnf("Failed to send Kafka notification: %v", err)
	}

	s.logger.Infof("User credited: UserID=%s, Amount=%s", userID, amount)
	return updated, bonus, nil
}

// ListUsers возвращает всех пользователей платформы
func (s *AdminService) ListUsers(ctx context.Context) ([]storages.User, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser возвращает пользователя по ID
func (s *AdminService) GetUser(ctx context.Context, userID string) (*storages.User, error) {
	return s.storage.GetUserByID(ctx, userID)
}

// ListTransactions возвращает реестр, опционально фильтруя по статусу
func (s *AdminService) ListTransactions(ctx context.Context, status storages.TransactionStatus) ([]storages.Transaction, error) {
	transactions, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if status == "" {
		return transactions, nil
	}

	filtered := make([]storages.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Status == status {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// UpdatePaymentMethod обновляет номер счета способа оплаты
func (s *AdminService) UpdatePaymentMethod(ctx context.Context, methodID, number string) (*storages.PaymentMethod, error) {
	if number == "" {
		return nil, fmt.Errorf("payment number must not be empty")
	}

	method, err := s.storage.UpdatePaymentMethodNumber(ctx, methodID, number)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Payment method updated: ID=%s", methodID)
	return method, nil
}

// GetPlatformStats возвращает агрегированные показатели для обзорной
// вкладки консоли администратора
func (s *AdminService) GetPlatformStats(ctx context.Context) (*storages.PlatformStats, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	transactions, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	stats := &storages.PlatformStats{
		TotalUsers:     len(users),
		ApprovedVolume: decimal.Zero,
	}
	for _, tx := range transactions {
		switch tx.Status {
		case storages.TransactionStatusPending:
			stats.PendingTransactions++
		case storages.TransactionStatusApproved:
			stats.ApprovedVolume = stats.ApprovedVolume.Add(tx.Amount)
		}
	}

	return stats, nil
}
