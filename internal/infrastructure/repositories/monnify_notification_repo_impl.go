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

// MonnifyNotificationRepositoryImpl archives Monnify webhook deliveries
type MonnifyNotificationRepositoryImpl struct {
	db *gorm.DB
}

// NewMonnifyNotificationRepository creates a new Monnify notification repository
func NewMonnifyNotificationRepository(db *gorm.DB) *MonnifyNotificationRepositoryImpl {
	return &MonnifyNotificationRepositoryImpl{db: db}
}

// Create persists one received notification
func (r *MonnifyNotificationRepositoryImpl) Create(ctx context.Context, n *entities.MonnifyNotification) error {
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
func (r *MonnifyNotificationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.MonnifyNotification, error) {
	var m models.MonnifyNotification
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
func (r *MonnifyNotificationRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entities.MonnifyNotification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	var ms []models.MonnifyNotification
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

// Search filters the archive by transaction reference and status
func (r *MonnifyNotificationRepositoryImpl) Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.MonnifyNotification, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if q.Reference != "" {
		db = db.Where("transaction_reference = ? OR payment_reference = ?", q.Reference, q.Reference)
	}
	if q.Status != "" {
		db = db.Where("payment_status = ?", q.Status)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}

	var ms []models.MonnifyNotification
	if err := db.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListUnmatched returns notifications that never found a ledger transaction
func (r *MonnifyNotificationRepositoryImpl) ListUnmatched(ctx context.Context, limit int) ([]*entities.MonnifyNotification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	var ms []models.MonnifyNotification
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
func (r *MonnifyNotificationRepositoryImpl) MarkMatched(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.MonnifyNotification{}).
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

func (r *MonnifyNotificationRepositoryImpl) toEntities(ms []models.MonnifyNotification) []*entities.MonnifyNotification {
	out := make([]*entities.MonnifyNotification, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out
}

func (r *MonnifyNotificationRepositoryImpl) toModel(e *entities.MonnifyNotification) *models.MonnifyNotification {
	return &models.MonnifyNotification{
		ID:                   e.ID,
		EventType:            e.EventType,
		TransactionReference: e.TransactionReference,
		PaymentReference:     e.PaymentReference,
		PaymentStatus:        e.PaymentStatus,
		AmountPaid:           e.AmountPaid,
		Currency:             e.Currency,
		PaidOn:               e.PaidOn,
		EventData:            e.EventData,
		Matched:              e.Matched,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func (r *MonnifyNotificationRepositoryImpl) toEntity(m *models.MonnifyNotification) *entities.MonnifyNotification {
	return &entities.MonnifyNotification{
		ID:                   m.ID,
		EventType:            m.EventType,
		TransactionReference: m.TransactionReference,
		PaymentReference:     m.PaymentReference,
		PaymentStatus:        m.PaymentStatus,
		AmountPaid:           m.AmountPaid,
		Currency:             m.Currency,
		PaidOn:               m.PaidOn,
		EventData:            m.EventData,
		Matched:              m.Matched,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
