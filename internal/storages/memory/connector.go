package memory

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// MemoryStorage реализует интерфейс Storage в памяти процесса.
// Все состояние платформы живет здесь и наполняется из статических
// фикстур при старте; персистентности между запусками нет.
type MemoryStorage struct {
	mu sync.RWMutex

	users          map[string]*storages.User
	transactions   []*storages.Transaction // от новых к старым
	paymentMethods []*storages.PaymentMethod
	prices         []*storages.CryptoPrice

	logger *logrus.Logger
}

// Config содержит конфигурацию хранилища
type Config struct {
	// SeedUserPassword пароль демо-пользователей из фикстур,
	// хешируется при загрузке
	SeedUserPassword string
	// SeedAdminPassword пароль демо-администратора
	SeedAdminPassword string
}

// New создает новое хранилище и загружает фикстуры
func New(cfg *Config, logger *logrus.Logger) (*MemoryStorage, error) {
	s := &MemoryStorage{
		users:  make(map[string]*storages.User),
		logger: logger,
	}

	if err := s.loadFixtures(cfg); err != nil {
		return nil, err
	}

	logger.Infof("In-memory storage initialized: %d users, %d transactions, %d payment methods",
		len(s.users), len(s.transactions), len(s.paymentMethods))

	return s, nil
}

// Ping проверяет доступность хранилища
func (s *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close освобождает хранилище
func (s *MemoryStorage) Close() error {
	s.logger.Info("Closing in-memory storage")
	return nil
}
