package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mdrafiulislam3103/axcrypto/internal/service"
	"github.com/mdrafiulislam3103/axcrypto/internal/storages"
)

// AdminHandler обработчик консоли администратора
type AdminHandler struct {
	service *service.AdminService
	logger  *logrus.Logger
}

// NewAdminHandler создает новый обработчик администратора
func NewAdminHandler(service *service.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

// CreditRequest запрос на зачисление бонуса. Сумма приходит строкой
// и валидируется на стороне сервиса.
type CreditRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// UpdatePaymentMethodRequest запрос на смену номера счета
type UpdatePaymentMethodRequest struct {
	Number string `json:"number" binding:"required,min=5,max=30"`
}

// ListUsers возвращает всех пользователей
// @Summary List all users
// @Description Get all platform users
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser возвращает пользователя по ID
// @Summary Get user by ID
// @Description Get a single platform user
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storages.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Errorf("Failed to get user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListTransactions возвращает реестр транзакций
// @Summary List transactions
// @Description Get all transactions, newest first, optionally filtered by status
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status (Pending, Approved, Rejected)"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /api/v1/admin/transactions [get]
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	status := storages.TransactionStatus(c.Query("status"))

	transactions, err := h.service.ListTransactions(c.Request.Context(), status)
	if err != nil {
		h.logger.Errorf("Failed to list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// ApproveTransaction одобряет заявку
// @Summary Approve a pending transaction
// @Description Approve a pending transaction; Buy and Deposit credit the owner's balance
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/transactions/{id}/approve [post]
func (h *AdminHandler) ApproveTransaction(c *gin.Context) {
	tx, err := h.service.ApproveTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondSettleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction approved and balance updated",
		"transaction": tx,
	})
}

// RejectTransaction отклоняет заявку
// @Summary Reject a pending transaction
// @Description Reject a pending transaction; balance is never touched
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/admin/transactions/{id}/reject [post]
func (h *AdminHandler) RejectTransaction(c *gin.Context) {
	tx, err := h.service.RejectTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondSettleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction rejected",
		"transaction": tx,
	})
}

// CreditUser зачисляет бонус на баланс пользователя
// @Summary Credit a user's balance
// @Description Credit a positive amount to the user and append an approved Bonus transaction
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body CreditRequest true "Credit data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/users/{id}/credit [post]
func (h *AdminHandler) CreditUser(c *gin.Context) {
	var req CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, bonus, err := h.service.CreditUser(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		if errors.Is(err, storages.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Credited $" + bonus.Amount.String() + " to user wallet",
		"user":        user,
		"transaction": bonus,
	})
}

// UpdatePaymentMethod обновляет номер счета способа оплаты
// @Summary Update payment method number
// @Description Update the destination account number of a payment method
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment method ID"
// @Param request body UpdatePaymentMethodRequest true "New number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/v1/admin/payment-methods/{id} [put]
func (h *AdminHandler) UpdatePaymentMethod(c *gin.Context) {
	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	method, err := h.service.UpdatePaymentMethod(c.Request.Context(), c.Param("id"), req.Number)
	if err != nil {
		if errors.Is(err, storages.ErrPaymentMethodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment number updated successfully",
		"payment_method": method,
	})
}

// GetStats возвращает агрегированные показатели платформы
// @Summary Get platform stats
// @Description Get user count, pending transactions and approved volume
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetPlatformStats(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to get stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// respondSettleError переводит ошибки обработки заявки в HTTP статусы
func (h *AdminHandler) respondSettleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storages.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
	case errors.Is(err, storages.ErrTransactionFinalized):
		c.JSON(http.StatusConflict, gin.H{"error": "Transaction already finalized"})
	default:
		h.logger.Errorf("Failed to settle transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle transaction"})
	}
}
