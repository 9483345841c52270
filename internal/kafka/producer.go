package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// События реестра
const (
	EventRequestSubmitted    = "request_submitted"
	EventTransactionApproved = "transaction_approved"
	EventTransactionRejected = "transaction_rejected"
	EventUserCredited        = "user_credited"
)

// LedgerEventMessage сообщение о событии реестра для сервиса уведомлений
type LedgerEventMessage struct {
	Event         string          `json:"event"`
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Producer Kafka producer для отправки событий реестра
type Producer struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

// NewProducer создает новый Kafka producer
func NewProducer(brokers []string, topic string, logger *logrus.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true, // Асинхронная отправка для производительности
		Compression:  kafka.Snappy,
		BatchTimeout: 10 * time.Millisecond,
	}

	logger.Infof("Kafka producer initialized for topic: %s", topic)

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// SendLedgerEvent отправляет событие реестра. Producer со значением nil
// безопасен: события просто не отправляются (используется в тестах).
func (p *Producer) SendLedgerEvent(ctx context.Context, event string, tx *storages.Transaction) error {
	if p == nil || p.writer == nil {
		return nil
	}

	message := LedgerEventMessage{
		Event:         event,
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Status:        string(tx.Status),
		Timestamp:     time.Now(),
	}

	// Сериализуем сообщение в JSON
	messageBytes, err := json.Marshal(message)
	if err != nil {
		p.logger.Errorf("Failed to marshal Kafka message: %v", err)
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// Отправляем сообщение в Kafka
	kafkaMessage := kafka.Message{
		Key:   []byte("user_" + tx.UserID),
		Value: messageBytes,
		Time:  time.Now(),
	}

	err = p.writer.WriteMessages(ctx, kafkaMessage)
	if err != nil {
		p.logger.Errorf("Failed to send message to Kafka: %v", err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.Infof("Sent ledger event to Kafka: Event=%s, TxID=%s, UserID=%s", event, tx.ID, tx.UserID)

	return nil
}

// Close закрывает Kafka producer
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	p.logger.Info("Closing Kafka producer")
	return p.writer.Close()
}
