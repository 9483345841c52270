package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mdrafiulislam3103/axcrypto/internal/api/handlers"
	"github.com/mdrafiulislam3103/axcrypto/internal/api/middleware"
	"github.com/mdrafiulislam3103/axcrypto/internal/service"
	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// SetupRouter настраивает и возвращает роутер со всеми эндпоинтами
func SetupRouter(
	walletService *service.WalletService,
	adminService *service.AdminService,
	jwtMiddleware *middleware.JWTMiddleware,
	jwtExpiration time.Duration,
	logger *logrus.Logger,
	ginMode string,
) *gin.Engine {
	// Установка режима Gin
	gin.SetMode(ginMode)

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Инициализация handlers
	authHandler := handlers.NewAuthHandler(walletService, jwtMiddleware, jwtExpiration, logger)
	walletHandler := handlers.NewWalletHandler(walletService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (публичная витрина: цены, способы оплаты, вход)
		v1.POST("/register", authHandler.Register)
		v1.POST("/login", authHandler.Login)
		v1.GET("/prices", walletHandler.GetPrices)
		v1.GET("/payment-methods", walletHandler.GetPaymentMethods)

		// Protected routes (кабинет пользователя, роль USER)
		authorized := v1.Group("")
		authorized.Use(jwtMiddleware.Auth(), jwtMiddleware.RequireRole(storages.RoleUser))
		{
			authorized.GET("/profile", walletHandler.GetProfile)
			authorized.GET("/balance", walletHandler.GetBalance)
			authorized.POST("/wallet/requests", walletHandler.SubmitRequest)
			authorized.GET("/wallet/transactions", walletHandler.GetTransactions)
		}

		// Admin routes (консоль администратора, роль ADMIN)
		admin := v1.Group("/admin")
		admin.Use(jwtMiddleware.Auth(), jwtMiddleware.RequireRole(storages.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.POST("/users/:id/credit", adminHandler.CreditUser)
			admin.GET("/transactions", adminHandler.ListTransactions)
			admin.POST("/transactions/:id/approve", adminHandler.ApproveTransaction)
			admin.POST("/transactions/:id/reject", adminHandler.RejectTransaction)
			admin.PUT("/payment-methods/:id", adminHandler.UpdatePaymentMethod)
			admin.GET("/stats", adminHandler.GetStats)
		}
	}

	return router
}
