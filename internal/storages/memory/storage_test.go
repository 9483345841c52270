package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

func newStorage(t *testing.T) *MemoryStorage {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	storage, err := New(&Config{
		SeedUserPassword:  "password123",
		SeedAdminPassword: "admin123",
	}, logger)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	return storage
}

func TestFixturesLoaded(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	users, err := storage.ListUsers(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 seed users, got %d", len(users))
	}

	john, err := storage.GetUserByID(ctx, "1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !john.Balance.Equal(decimal.RequireFromString("1250.50")) {
		t.Fatalf("Expected seed balance 1250.50, got %s", john.Balance)
	}

	transactions, _ := storage.ListTransactions(ctx)
	if len(transactions) != 2 {
		t.Fatalf("Expected 2 seed transactions, got %d", len(transactions))
	}

	prices, _ := storage.ListPrices(ctx)
	if len(prices) != 4 {
		t.Fatalf("Expected 4 seed prices, got %d", len(prices))
	}
}

func TestGetUserByIdentifier(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	byEmail, err := storage.GetUserByIdentifier(ctx, "john.doe@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	byPhone, err := storage.GetUserByIdentifier(ctx, "+880 1712345678")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byEmail.ID != byPhone.ID {
		t.Fatalf("Expected same user by email and phone, got %s and %s", byEmail.ID, byPhone.ID)
	}

	_, err = storage.GetUserByIdentifier(ctx, "nobody@example.com")
	if !errors.Is(err, storages.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateUserUniqueness(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	err := storage.CreateUser(ctx, &storages.User{
		ID:    "dup-email",
		Name:  "Dup",
		Email: "john.doe@example.com",
		Phone: "+880 1799999999",
	})
	if !errors.Is(err, storages.ErrUserExists) {
		t.Fatalf("Expected ErrUserExists for duplicate email, got %v", err)
	}

	err = storage.CreateUser(ctx, &storages.User{
		ID:    "dup-phone",
		Name:  "Dup",
		Email: "dup@example.com",
		Phone: "+880 1712345678",
	})
	if !errors.Is(err, storages.ErrUserExists) {
		t.Fatalf("Expected ErrUserExists for duplicate phone, got %v", err)
	}
}

func TestLedgerOrdering(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	storage.CreateTransaction(ctx, &storages.Transaction{
		ID:     "TX-NEW",
		UserID: "1",
		Type:   storages.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(10),
		Status: storages.TransactionStatusPending,
	})

	transactions, _ := storage.ListTransactions(ctx)
	if transactions[0].ID != "TX-NEW" {
		t.Fatalf("Expected newest transaction first, got %s", transactions[0].ID)
	}

	mine, _ := storage.ListUserTransactions(ctx, "1", 2)
	if len(mine) != 2 || mine[0].ID != "TX-NEW" {
		t.Fatalf("Expected limited newest-first user transactions, got %v", mine)
	}
}

func TestSettleTransaction(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	// Одобрение с зачислением: статус и баланс меняются вместе
	tx, err := storage.SettleTransaction(ctx, "TX1002", storages.TransactionStatusApproved, decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tx.Status != storages.TransactionStatusApproved {
		t.Fatalf("Expected Approved, got %s", tx.Status)
	}

	user, _ := storage.GetUserByID(ctx, "1")
	if !user.Balance.Equal(decimal.RequireFromString("1350.50")) {
		t.Fatalf("Expected balance 1350.50, got %s", user.Balance)
	}

	// Конечная транзакция не обрабатывается повторно
	_, err = storage.SettleTransaction(ctx, "TX1002", storages.TransactionStatusApproved, decimal.NewFromInt(100))
	if !errors.Is(err, storages.ErrTransactionFinalized) {
		t.Fatalf("Expected ErrTransactionFinalized, got %v", err)
	}

	// TX1001 из фикстур уже Approved
	_, err = storage.SettleTransaction(ctx, "TX1001", storages.TransactionStatusRejected, decimal.Zero)
	if !errors.Is(err, storages.ErrTransactionFinalized) {
		t.Fatalf("Expected ErrTransactionFinalized, got %v", err)
	}

	_, err = storage.SettleTransaction(ctx, "no-such-tx", storages.TransactionStatusApproved, decimal.Zero)
	if !errors.Is(err, storages.ErrTransactionNotFound) {
		t.Fatalf("Expected ErrTransactionNotFound, got %v", err)
	}
}

func TestCreditBalance(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	bonus := &storages.Transaction{
		ID:     "BONUS-1",
		UserID: "1",
		Type:   storages.TransactionTypeBonus,
		Amount: decimal.NewFromInt(50),
		Status: storages.TransactionStatusApproved,
	}

	user, err := storage.CreditBalance(ctx, "1", decimal.NewFromInt(50), bonus)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !user.Balance.Equal(decimal.RequireFromString("1300.50")) {
		t.Fatalf("Expected balance 1300.50, got %s", user.Balance)
	}

	transactions, _ := storage.ListTransactions(ctx)
	if transactions[0].ID != "BONUS-1" {
		t.Fatalf("Expected bonus at head of ledger, got %s", transactions[0].ID)
	}

	_, err = storage.CreditBalance(ctx, "no-such-user", decimal.NewFromInt(50), bonus)
	if !errors.Is(err, storages.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	// Мутация возвращенной копии не затрагивает хранилище
	user, _ := storage.GetUserByID(ctx, "1")
	user.Balance = decimal.NewFromInt(0)

	fresh, _ := storage.GetUserByID(ctx, "1")
	if !fresh.Balance.Equal(decimal.RequireFromString("1250.50")) {
		t.Fatalf("Expected stored balance untouched, got %s", fresh.Balance)
	}

	transactions, _ := storage.ListTransactions(ctx)
	transactions[0].Status = storages.TransactionStatusRejected

	freshTx, _ := storage.GetTransaction(ctx, "TX1001")
	if freshTx.Status != storages.TransactionStatusApproved {
		t.Fatalf("Expected stored transaction untouched, got %s", freshTx.Status)
	}
}

func TestUpdatePaymentMethodNumber(t *testing.T) {
	storage := newStorage(t)
	ctx := context.Background()

	method, err := storage.UpdatePaymentMethodNumber(ctx, "nagad", "01700000000")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if method.Number != "01700000000" {
		t.Fatalf("Expected updated number, got %s", method.Number)
	}

	methods, _ := storage.ListPaymentMethods(ctx)
	for _, m := range methods {
		if m.ID == "nagad" && m.Number != "01700000000" {
			t.Fatalf("Expected persisted number, got %s", m.Number)
		}
	}

	_, err = storage.UpdatePaymentMethodNumber(ctx, "no-such-method", "123")
	if !errors.Is(err, storages.ErrPaymentMethodNotFound) {
		t.Fatalf("Expected ErrPaymentMethodNotFound, got %v", err)
	}
}
