package config

import "time"

// Server defaults
const (
	DefaultHTTPPort = "8080"
	DefaultGinMode  = "release"
	DefaultLogLevel = "info"
)

// JWT defaults
const (
	DefaultJWTSecret     = "change-me-in-production"
	DefaultJWTExpiration = 24 * time.Hour
)

// Seed defaults (демо-площадка, не продакшен)
const (
	DefaultSeedUserPassword  = "password123"
	DefaultSeedAdminPassword = "admin123"
)

// Cache defaults
const (
	DefaultCachePricesTTL = 5 * time.Minute
)

// Kafka defaults
const (
	DefaultKafkaBrokers = "localhost:9092"
	DefaultKafkaTopic   = "ledger-events"
)
