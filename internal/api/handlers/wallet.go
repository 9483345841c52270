package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mdrafiulislam3103/axcrypto/internal/api/middleware"
	"github.com/mdrafiulislam3103/axcrypto/internal/service"
	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// WalletHandler обработчик для операций с кошельком
type WalletHandler struct {
	service *service.WalletService
	logger  *logrus.Logger
}

// NewWalletHandler создает новый обработчик кошелька
func NewWalletHandler(service *service.WalletService, logger *logrus.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		logger:  logger,
	}
}

// SubmitRequestBody запрос на создание заявки (Buy, Sell, Withdraw, Deposit)
type SubmitRequestBody struct {
	Type          string          `json:"type" binding:"required,oneof=Buy Sell Withdraw Deposit"`
	Crypto        string          `json:"crypto" binding:"omitempty,max=10"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,max=50"`
	ExternalRef   string          `json:"transaction_id" binding:"omitempty,max=100"`
}

// GetProfile возвращает профиль текущего пользователя
// @Summary Get user profile
// @Description Get profile of the authenticated user including balance
// @Tags wallet
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *WalletHandler) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf("Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetBalance возвращает баланс пользователя
// @Summary Get user balance
// @Description Get current spendable balance
// @Tags wallet
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/balance [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf("Failed to get balance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": user.Balance})
}

// SubmitRequest создает заявку пользователя в статусе Pending
// @Summary Submit a trade request
// @Description Submit a buy, sell, withdraw or deposit request for admin review
// @Tags wallet
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SubmitRequestBody true "Request data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/wallet/requests [post]
func (h *WalletHandler) SubmitRequest(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmitRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	tx, err := h.service.SubmitRequest(
		c.Request.Context(),
		userID,
		storages.TransactionType(req.Type),
		req.Crypto,
		req.Amount,
		req.PaymentMethod,
		req.ExternalRef,
	)
	if err != nil {
		h.logger.Errorf("Failed to submit request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Request submitted! Admin will review shortly.",
		"transaction": tx,
	})
}

// GetTransactions возвращает транзакции пользователя от новых к старым
// @Summary Get user transactions
// @Description Get transaction history of the authenticated user, newest first
// @Tags wallet
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of transactions"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/v1/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
	}

	transactions, err := h.service.GetUserTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		h.logger.Errorf("Failed to get transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetPrices возвращает табло цен криптовалют
// @Summary Get crypto prices
// @Description Get the crypto price board
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/v1/prices [get]
func (h *WalletHandler) GetPrices(c *gin.Context) {
	prices, err := h.service.GetPrices(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to get prices: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": prices})
}

// GetPaymentMethods возвращает способы оплаты
// @Summary Get payment methods
// @Description Get available payment methods with destination numbers
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/v1/payment-methods [get]
func (h *WalletHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.service.GetPaymentMethods(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to get payment methods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment methods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}
