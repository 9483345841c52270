package storages

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole роль пользователя в системе
type UserRole string

// Роли пользователей (закрытое перечисление)
const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// Valid проверяет, что роль является одной из известных
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Статусы пользователей
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
	UserStatusPending  = "Pending"
)

// User представляет пользователя платформы
type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	Status       string          `json:"status"`
	Role         UserRole        `json:"role"`
	MemberSince  string          `json:"member_since"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TransactionType определяет типы транзакций
type TransactionType string

const (
	TransactionTypeBuy      TransactionType = "Buy"
	TransactionTypeSell     TransactionType = "Sell"
	TransactionTypeWithdraw TransactionType = "Withdraw"
	TransactionTypeDeposit  TransactionType = "Deposit"
	TransactionTypeBonus    TransactionType = "Bonus"
	TransactionTypeRefund   TransactionType = "Refund"
)

// CreditsBalance сообщает, увеличивает ли одобрение транзакции
// данного типа баланс владельца
func (t TransactionType) CreditsBalance() bool {
	return t == TransactionTypeBuy || t == TransactionTypeDeposit
}

// TransactionStatus определяет статусы транзакций
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "Pending"
	TransactionStatusApproved TransactionStatus = "Approved"
	TransactionStatusRejected TransactionStatus = "Rejected"
)

// Terminal сообщает, является ли статус конечным.
// Конечные транзакции повторно не обрабатываются.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusApproved || s == TransactionStatusRejected
}

// Transaction представляет запись в реестре (покупка, продажа, вывод,
// пополнение, бонус, возврат)
type Transaction struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	UserName      string            `json:"user_name,omitempty"`
	Date          string            `json:"date"`
	Type          TransactionType   `json:"type"`
	Crypto        string            `json:"crypto,omitempty"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	Details       string            `json:"details,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	ExternalRef   string            `json:"transaction_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// PaymentMethod представляет способ оплаты с номером счета,
// редактируемым администратором
type PaymentMethod struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Icon   string `json:"icon"`
}

// CryptoPrice представляет курс криптовалюты для табло цен
type CryptoPrice struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change24h float64         `json:"change24h"`
}

// PlatformStats агрегированные показатели для консоли администратора
type PlatformStats struct {
	TotalUsers          int             `json:"total_users"`
	PendingTransactions int             `json:"pending_transactions"`
	ApprovedVolume      decimal.Decimal `json:"approved_volume"`
}
