package storages

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Ошибки хранилища. Неизвестные идентификаторы и повторная обработка
// конечных транзакций возвращаются вызывающему явно, а не проглатываются.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("user already exists")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrTransactionFinalized  = errors.New("transaction already finalized")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
)

// Storage определяет интерфейс для работы с хранилищем данных.
// Реестр (транзакции + балансы) — единый домен консистентности:
// операции, затрагивающие и статус, и баланс, атомарны.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)

	// Ledger operations
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, txID string) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]Transaction, error)
	ListUserTransactions(ctx context.Context, userID string, limit int) ([]Transaction, error)

	// SettleTransaction атомарно переводит транзакцию из Pending в
	// конечный статус и изменяет баланс владельца на balanceDelta.
	// Обе мутации применяются вместе или не применяются вовсе.
	SettleTransaction(ctx context.Context, txID string, status TransactionStatus, balanceDelta decimal.Decimal) (*Transaction, error)

	// CreditBalance атомарно увеличивает баланс пользователя и
	// добавляет бонусную транзакцию в реестр.
	CreditBalance(ctx context.Context, userID string, amount decimal.Decimal, bonus *Transaction) (*User, error)

	// Payment methods
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	UpdatePaymentMethodNumber(ctx context.Context, methodID, number string) (*PaymentMethod, error)

	// Prices
	ListPrices(ctx context.Context) ([]CryptoPrice, error)

	// Health check
	Ping(ctx context.Context) error
	Close() error
}
