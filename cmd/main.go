package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdrafiulislam3103/axcrypto/internal/api"
	"github.com/mdrafiulislam3103/axcrypto/internal/api/middleware"
	"github.com/mdrafiulislam3103/axcrypto/internal/cache"
	"github.com/mdrafiulislam3103/axcrypto/internal/config"
	"github.com/mdrafiulislam3103/axcrypto/internal/kafka"
	"github.com/mdrafiulislam3103/axcrypto/internal/logger"
	"github.com/mdrafiulislam3103/axcrypto/internal/service"
	"github.com/mdrafiulislam3103/axcrypto/internal/storages/memory"
)

// @title axcrypto P2P Trading API
// @version 1.0
// @description API for the axcrypto peer-to-peer crypto trading platform: wallet, trade requests and admin approval workflow
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@axcrypto.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Парсинг флагов командной строки
	configPath := flag.String("c", "", "Path to config file")
	flag.Parse()

	// Загрузка конфигурации
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Валидация конфигурации
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера
	log := logger.New(cfg.Logger.Level)
	log.Info("Starting axcrypto platform service...")

	// Инициализация хранилища в памяти с фикстурами
	storage, err := memory.New(&memory.Config{
		SeedUserPassword:  cfg.Seed.UserPassword,
		SeedAdminPassword: cfg.Seed.AdminPassword,
	}, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer storage.Close()

	// Инициализация кеша табло цен
	pricesCache := cache.NewPricesCache(cfg.Cache.PricesTTL)
	log.Info("Prices cache initialized")

	// Инициализация Kafka producer для событий реестра
	kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	defer kafkaProducer.Close()

	// Создание сервисного слоя
	walletService := service.NewWalletService(storage, pricesCache, kafkaProducer, log)
	adminService := service.NewAdminService(storage, kafkaProducer, log)
	log.Info("Services initialized")

	// Создание JWT middleware
	jwtMiddleware := middleware.NewJWTMiddleware(cfg.JWT.Secret, log)

	// Настройка роутера
	router := api.SetupRouter(walletService, adminService, jwtMiddleware, cfg.JWT.Expiration, log, cfg.Server.GinMode)

	// Создание HTTP сервера
	srv := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	// Запуск HTTP сервера в горутине
	go func() {
		log.Infof("HTTP server is listening on port %s", cfg.Server.HTTPPort)
		log.Infof("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Ожидание сигнала завершения
	<-done
	log.Info("Shutting down server...")

	// Graceful shutdown с таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
