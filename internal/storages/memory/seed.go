package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// loadFixtures наполняет хранилище демонстрационными данными:
// пользователи, транзакции, способы оплаты и табло цен.
func (s *MemoryStorage) loadFixtures(cfg *Config) error {
	userHash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed user password: %w", err)
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	now := time.Now()

	seedUsers := []*storages.User{
		{
			ID:           "1",
			Name:         "John Doe",
			Email:        "john.doe@example.com",
			Phone:        "+880 1712345678",
			PasswordHash: string(userHash),
			Balance:      decimal.RequireFromString("1250.50"),
			Status:       storages.UserStatusActive,
			Role:         storages.RoleUser,
			MemberSince:  "Jan 2024",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "admin-1",
			Name:         "Admin User",
			Email:        "admin@axcrypto.com",
			Phone:        "+880 1865467486",
			PasswordHash: string(adminHash),
			Balance:      decimal.RequireFromString("99999.00"),
			Status:       storages.UserStatusActive,
			Role:         storages.RoleAdmin,
			MemberSince:  "Dec 2023",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, u := range seedUsers {
		s.users[u.ID] = u
	}

	// Реестр хранится от новых к старым
	s.transactions = []*storages.Transaction{
		{
			ID:            "TX1001",
			UserID:        "1",
			UserName:      "John Doe",
			Date:          "2024-03-20",
			Type:          storages.TransactionTypeBuy,
			Crypto:        "USDT",
			Amount:        decimal.NewFromInt(500),
			Status:        storages.TransactionStatusApproved,
			PaymentMethod: "bKash",
			ExternalRef:   "TRX778899",
			CreatedAt:     now,
		},
		{
			ID:            "TX1002",
			UserID:        "1",
			UserName:      "John Doe",
			Date:          "2024-03-19",
			Type:          storages.TransactionTypeWithdraw,
			Amount:        decimal.NewFromInt(100),
			Status:        storages.TransactionStatusPending,
			PaymentMethod: "Nagad",
			CreatedAt:     now.Add(-time.Hour),
		},
	}

	s.paymentMethods = []*storages.PaymentMethod{
		{ID: "bkash", Name: "bKash", Number: "01917142350", Icon: "mobile-screen-button"},
		{ID: "rocket", Name: "Rocket", Number: "01306755110", Icon: "rocket"},
		{ID: "nagad", Name: "Nagad", Number: "01865467486", Icon: "money-bill-wave"},
		{ID: "upay", Name: "Upay", Number: "01865467486", Icon: "mobile-alt"},
	}

	// Статическое табло цен: внешнего фида нет
	s.prices = []*storages.CryptoPrice{
		{Symbol: "BTC", Name: "Bitcoin", Price: decimal.RequireFromString("117926.99"), Change24h: 2.45},
		{Symbol: "ETH", Name: "Ethereum", Price: decimal.RequireFromString("3647.14"), Change24h: -0.59},
		{Symbol: "BNB", Name: "BNB", Price: decimal.RequireFromString("790.52"), Change24h: 4.25},
		{Symbol: "USDT", Name: "Tether", Price: decimal.RequireFromString("1.00"), Change24h: 0.01},
	}

	return nil
}
