package memory

import (
	"context"
	"time"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// CreateUser создает нового пользователя
func (s *MemoryStorage) CreateUser(ctx context.Context, user *storages.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Уникальность email и телефона среди существующих пользователей
	for _, u := range s.users {
		if u.Email == user.Email || (user.Phone != "" && u.Phone == user.Phone) {
			return storages.ErrUserExists
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[user.ID] = &stored

	s.logger.Infof("Created user: %s (ID: %s)", user.Name, user.ID)
	return nil
}

// GetUserByID возвращает пользователя по ID
func (s *MemoryStorage) GetUserByID(ctx context.Context, userID string) (*storages.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, storages.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// GetUserByIdentifier возвращает пользователя по email или телефону
func (s *MemoryStorage) GetUserByIdentifier(ctx context.Context, identifier string) (*storages.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == identifier || user.Phone == identifier {
			copied := *user
			return &copied, nil
		}
	}

	return nil, storages.ErrUserNotFound
}

// ListUsers возвращает всех пользователей
func (s *MemoryStorage) ListUsers(ctx context.Context) ([]storages.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]storages.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}

	return users, nil
}

// ListPaymentMethods возвращает все способы оплаты
func (s *MemoryStorage) ListPaymentMethods(ctx context.Context) ([]storages.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	methods := make([]storages.PaymentMethod, 0, len(s.paymentMethods))
	for _, m := range s.paymentMethods {
		methods = append(methods, *m)
	}

	return methods, nil
}

// UpdatePaymentMethodNumber обновляет номер счета способа оплаты
func (s *MemoryStorage) UpdatePaymentMethodNumber(ctx context.Context, methodID, number string) (*storages.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.paymentMethods {
		if m.ID == methodID {
			m.Number = number
			copied := *m
			s.logger.Infof("Updated payment method %s number", methodID)
			return &copied, nil
		}
	}

	return nil, storages.ErrPaymentMethodNotFound
}

// ListPrices возвращает табло цен криптовалют
func (s *MemoryStorage) ListPrices(ctx context.Context) ([]storages.CryptoPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices := make([]storages.CryptoPrice, 0, len(s.prices))
	for _, p := range s.prices {
		prices = append(prices, *p)
	}

	return prices, nil
}
