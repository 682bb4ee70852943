package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
	"pay-ledger.backend/internal/interfaces/http/response"
	"pay-ledger.backend/internal/usecases"
)

type paystackNotificationService interface {
	Process(ctx context.Context, event string, data json.RawMessage) (*entities.PaystackNotification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.PaystackNotification, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entities.PaystackNotification, error)
	Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.PaystackNotification, error)
}

// PaystackNotificationHandler handles Paystack webhook and audit endpoints
type PaystackNotificationHandler struct {
	notifications paystackNotificationService
}

// NewPaystackNotificationHandler creates a new Paystack notification handler
func NewPaystackNotificationHandler(notifications *usecases.PaystackNotificationUsecase) *PaystackNotificationHandler {
	return &PaystackNotificationHandler{notifications: notifications}
}

// HandleWebhook handles incoming webhooks from Paystack. Once the payload
// parses, the provider always gets a 2xx: reconciliation misses must not
// trigger redeliveries.
// POST /api/v1/webhooks/paystack
func (h *PaystackNotificationHandler) HandleWebhook(c *gin.Context) {
	var input struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := h.notifications.Process(c.Request.Context(), input.Event, input.Data)
	if err != nil {
		response.Error(c, err)
		return
	}

	if notification == nil {
		// Unhandled event type, acknowledged but not archived
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"received": true, "notification": notification})
}

// ListNotifications lists archived Paystack notifications
// GET /api/v1/notifications/paystack
func (h *PaystackNotificationHandler) ListNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.notifications.FindAll(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	if notifications == nil {
		notifications = []*entities.PaystackNotification{}
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// SearchNotifications filters archived Paystack notifications
// GET /api/v1/notifications/paystack/search
func (h *PaystackNotificationHandler) SearchNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	q := entities.NotificationSearch{
		Reference: c.Query("reference"),
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	}

	notifications, err := h.notifications.Search(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	if notifications == nil {
		notifications = []*entities.PaystackNotification{}
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// GetNotification fetches one archived Paystack notification
// GET /api/v1/notifications/paystack/:id
func (h *PaystackNotificationHandler) GetNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid notification ID"))
		return
	}

	notification, err := h.notifications.FindByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Notification not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notification": notification})
}
