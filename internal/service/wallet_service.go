package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdrafiulislam3103/axcrypto/internal/cache"
	"github.com/mdrafiulislam3103/axcrypto/internal/kafka"
	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
	"github.com/mdrafiulislam3103/axcrypto/pkg"
)

// WalletService сервисный слой для пользовательских операций:
// регистрация, аутентификация, заявки в реестр, табло цен
type WalletService struct {
	storage       storages.Storage
	pricesCache   *cache.PricesCache
	kafkaProducer *kafka.Producer
	logger        *logrus.Logger
}

// NewWalletService создает новый экземпляр сервиса
func NewWalletService(
	storage storages.Storage,
	pricesCache *cache.PricesCache,
	kafkaProducer *kafka.Producer,
	logger *logrus.Logger,
) *WalletService {
	return &WalletService{
		storage:       storage,
		pricesCache:   pricesCache,
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

// RegisterUser регистрирует нового пользователя с нулевым балансом
// и ролью USER
func (s *WalletService) RegisterUser(ctx context.Context, name, email, phone, password string) (*storages.User, error) {
	// Проверяем, не существует ли уже пользователь
	existingUser, _ := s.storage.GetUserByIdentifier(ctx, email)
	if existingUser != nil {
		return nil, storages.ErrUserExists
	}
	if phone != "" {
		existingUser, _ = s.storage.GetUserByIdentifier(ctx, phone)
		if existingUser != nil {
			return nil, storages.ErrUserExists
		}
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Errorf("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Создаем пользователя
	user := &storages.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hashedPassword),
		Balance:      decimal.Zero,
		Status:       storages.UserStatusActive,
		Role:         storages.RoleUser,
		MemberSince:  time.Now().Format("Jan 2006"),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infof("User registered successfully: %s", email)
	return user, nil
}

// AuthenticateUser аутентифицирует пользователя по email или телефону.
// Неизвестный идентификатор или неверный пароль — явная ошибка,
// подстановки пользователя по умолчанию нет.
func (s *WalletService) AuthenticateUser(ctx context.Context, identifier, password string) (*storages.User, error) {
	user, err := s.storage.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	// Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warnf("Failed authentication attempt for identifier: %s", identifier)
		return nil, fmt.Errorf("invalid credentials")
	}

	s.logger.Infof("User authenticated successfully: %s", user.Email)
	return user, nil
}

// GetProfile возвращает профиль пользователя с текущим балансом
func (s *WalletService) GetProfile(ctx context.Context, userID string) (*storages.User, error) {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SubmitRequest создает заявку пользователя в статусе Pending.
// Баланс на этом шаге не меняется: зачисление происходит только
// при одобрении администратором.
func (s *WalletService) SubmitRequest(ctx context.Context, userID string, txType storages.TransactionType, crypto string, amount decimal.Decimal, paymentMethod, externalRef string) (*storages.Transaction, error) {
	if err := pkg.ValidateRequestType(txType); err != nil {
		return nil, err
	}
	if err := pkg.ValidateAmount(amount); err != nil {
		return nil, err
	}

	// Для покупки и продажи требуется торгуемый символ
	if txType == storages.TransactionTypeBuy || txType == storages.TransactionTypeSell {
		crypto = pkg.NormalizeCryptoSymbol(crypto)
		if err := pkg.ValidateCryptoSymbol(crypto); err != nil {
			return nil, err
		}
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tx := &storages.Transaction{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		UserName:      user.Name,
		Date:          time.Now().Format("2006-01-02"),
		Type:          txType,
		Crypto:        crypto,
		Amount:        amount,
		Status:        storages.TransactionStatusPending,
		PaymentMethod: paymentMethod,
		ExternalRef:   externalRef,
	}

	if err := s.storage.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Отправляем событие в Kafka
	if err := s.kafkaProducer.SendLedgerEvent(ctx, kafka.EventRequestSubmitted, tx); err != nil {
		s.logger.Warnf("Failed to send Kafka notification: %v", err)
	}

	s.logger.Infof("Request submitted: UserID=%s, Type=%s, Amount=%s", userID, txType, amount)
	return tx, nil
}

// GetUserTransactions возвращает транзакции пользователя от новых к старым
func (s *WalletService) GetUserTransactions(ctx context.Context, userID string, limit int) ([]storages.Transaction, error) {
	transactions, err := s.storage.ListUserTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetPrices возвращает табло цен (из кеша или хранилища)
func (s *WalletService) GetPrices(ctx context.Context) ([]storages.CryptoPrice, error) {
	// Пытаемся получить из кеша
	if prices, ok := s.pricesCache.Get(); ok {
		s.logger.Debug("Returning crypto prices from cache")
		return prices, nil
	}

	prices, err := s.storage.ListPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}

	// Сохраняем в кеш
	s.pricesCache.Set(prices)

	return prices, nil
}

// GetPaymentMethods возвращает способы оплаты с номерами счетов
func (s *WalletService) GetPaymentMethods(ctx context.Context) ([]storages.PaymentMethod, error) {
	methods, err := s.storage.ListPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment methods: %w", err)
	}
	return methods, nil
}
