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

type monnifyNotificationService interface {
	Process(ctx context.Context, eventType string, eventData json.RawMessage) (*entities.MonnifyNotification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MonnifyNotification, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entities.MonnifyNotification, error)
	Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.MonnifyNotification, error)
}

// MonnifyNotificationHandler handles Monnify webhook and audit endpoints
type MonnifyNotificationHandler struct {
	notifications monnifyNotificationService
}

// NewMonnifyNotificationHandler creates a new Monnify notification handler
func NewMonnifyNotificationHandler(notifications *usecases.MonnifyNotificationUsecase) *MonnifyNotificationHandler {
	return &MonnifyNotificationHandler{notifications: notifications}
}

// HandleWebhook handles incoming webhooks from Monnify
// POST /api/v1/webhooks/monnify
func (h *MonnifyNotificationHandler) HandleWebhook(c *gin.Context) {
	var input struct {
		EventType string          `json:"eventType"`
		EventData json.RawMessage `json:"eventData"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := h.notifications.Process(c.Request.Context(), input.EventType, input.EventData)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"received": true, "notification": notification})
}

// ListNotifications lists archived Monnify notifications
// GET /api/v1/notifications/monnify
func (h *MonnifyNotificationHandler) ListNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.notifications.FindAll(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	if notifications == nil {
		notifications = []*entities.MonnifyNotification{}
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// SearchNotifications filters archived Monnify notifications by reference
// GET /api/v1/notifications/monnify/search
func (h *MonnifyNotificationHandler) SearchNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	q := entities.NotificationSearch{
		Reference: c.Query("reference"),
		Limit:     limit,
		Offset:    offset,
	}

	notifications, err := h.notifications.Search(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	if notifications == nil {
		notifications = []*entities.MonnifyNotification{}
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// GetNotification fetches one archived Monnify notification
// GET /api/v1/notifications/monnify/:id
func (h *MonnifyNotificationHandler) GetNotification(c *gin.Context) {
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
