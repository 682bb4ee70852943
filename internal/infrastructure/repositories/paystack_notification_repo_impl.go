package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
	"pay-ledger.backend/internal/infrastructure/models"
)

const defaultNotificationPageSize = 100

// PaystackNotificationRepositoryImpl archives Paystack webhook deliveries
type PaystackNotificationRepositoryImpl struct {
	db *gorm.DB
}

// NewPaystackNotificationRepository creates a new Paystack notification repository
func NewPaystackNotificationRepository(db *gorm.DB) *PaystackNotificationRepositoryImpl {
	return &PaystackNotificationRepositoryImpl{db: db}
}

// Create persists one received notification
func (r *PaystackNotificationRepositoryImpl) Create(ctx context.Context, n *entities.PaystackNotification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	m := r.toModel(n)

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*n = *r.toEntity(m)
	return nil
}

// GetByID gets a notification by ID
func (r *PaystackNotificationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaystackNotification, error) {
	var m models.PaystackNotification
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns archived notifications, newest first
func (r *PaystackNotificationRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entities.PaystackNotification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	var ms []models.PaystackNotification
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// Search filters the archive by reference substring and status
func (r *PaystackNotificationRepositoryImpl) Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.PaystackNotification, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if q.Reference != "" {
		db = db.Where("reference LIKE ?", "%"+q.Reference+"%")
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}

	var ms []models.PaystackNotification
	if err := db.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListUnmatched returns notifications that never found a ledger transaction
func (r *PaystackNotificationRepositoryImpl) ListUnmatched(ctx context.Context, limit int) ([]*entities.PaystackNotification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	var ms []models.PaystackNotification
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("matched = ?", false).
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// MarkMatched flags a notification as reconciled
func (r *PaystackNotificationRepositoryImpl) MarkMatched(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.PaystackNotification{}).
		Where("id = ?", id).
		Update("matched", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PaystackNotificationRepositoryImpl) toEntities(ms []models.PaystackNotification) []*entities.PaystackNotification {
	out := make([]*entities.PaystackNotification, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out
}

func (r *PaystackNotificationRepositoryImpl) toModel(e *entities.PaystackNotification) *models.PaystackNotification {
	return &models.PaystackNotification{
		ID:              e.ID,
		PaystackID:      e.PaystackID,
		Event:           e.Event,
		Domain:          e.Domain,
		Status:          e.Status,
		Reference:       e.Reference,
		Amount:          e.Amount,
		Currency:        e.Currency,
		GatewayResponse: e.GatewayResponse,
		Channel:         e.Channel,
		IPAddress:       e.IPAddress,
		PaidAt:          e.PaidAt,
		Customer:        e.Customer,
		Authorization:   e.Authorization,
		Matched:         e.Matched,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (r *PaystackNotificationRepositoryImpl) toEntity(m *models.PaystackNotification) *entities.PaystackNotification {
	return &entities.PaystackNotification{
		ID:              m.ID,
		PaystackID:      m.PaystackID,
		Event:           m.Event,
		Domain:          m.Domain,
		Status:          m.Status,
		Reference:       m.Reference,
		Amount:          m.Amount,
		Currency:        m.Currency,
		GatewayResponse: m.GatewayResponse,
		Channel:         m.Channel,
		IPAddress:       m.IPAddress,
		PaidAt:          m.PaidAt,
		Customer:        m.Customer,
		Authorization:   m.Authorization,
		Matched:         m.Matched,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
