package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
	"pay-ledger.backend/internal/domain/repositories"
	"pay-ledger.backend/pkg/logger"
)

// MonnifyNotificationUsecase archives incoming Monnify webhooks and maps them
// onto ledger transactions. Unlike Paystack, Monnify deliveries carry a
// settled amount, so reconciliation revises the transaction's amount as well
// as its status.
type MonnifyNotificationUsecase struct {
	notificationRepo repositories.MonnifyNotificationRepository
	ledger           *LedgerUsecase
	notifier         *paymentNotifier
}

// NewMonnifyNotificationUsecase creates a new Monnify notification usecase
func NewMonnifyNotificationUsecase(
	notificationRepo repositories.MonnifyNotificationRepository,
	walletRepo repositories.WalletRepository,
	userRepo repositories.UserRepository,
	ledger *LedgerUsecase,
	mailer Mailer,
) *MonnifyNotificationUsecase {
	return &MonnifyNotificationUsecase{
		notificationRepo: notificationRepo,
		ledger:           ledger,
		notifier:         newPaymentNotifier(walletRepo, userRepo, mailer),
	}
}

// mapMonnifyStatus maps Monnify's paymentStatus vocabulary onto ledger
// statuses. Unknown tokens pass through uppercased.
func mapMonnifyStatus(raw string) string {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "paid", "success":
		return string(entities.TransactionStatusSuccess)
	case "failed":
		return string(entities.TransactionStatusFailed)
	case "":
		return string(entities.TransactionStatusPending)
	default:
		return strings.ToUpper(s)
	}
}

type monnifyEventData struct {
	TransactionReference string           `json:"transactionReference"`
	PaymentReference     string           `json:"paymentReference"`
	PaymentStatus        string           `json:"paymentStatus"`
	AmountPaid           *decimal.Decimal `json:"amountPaid"`
	Currency             string           `json:"currency"`
	PaidOn               string           `json:"paidOn"`
}

// Monnify timestamps arrive in a handful of shapes depending on the event.
var monnifyTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05.0",
	"2006-01-02T15:04:05",
}

func parseMonnifyTime(raw string) *time.Time {
	for _, layout := range monnifyTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// Process handles one webhook delivery. Every event type is archived; the
// archived record is returned even when no ledger transaction matched.
func (u *MonnifyNotificationUsecase) Process(ctx context.Context, eventType string, eventData json.RawMessage) (*entities.MonnifyNotification, error) {
	if eventType == "" || len(eventData) == 0 {
		return nil, domainerrors.BadRequest("invalid Monnify notification data")
	}

	var payload monnifyEventData
	if err := json.Unmarshal(eventData, &payload); err != nil {
		return nil, domainerrors.BadRequest("invalid Monnify notification data")
	}

	notification := &entities.MonnifyNotification{
		EventType:            eventType,
		TransactionReference: null.NewString(payload.TransactionReference, payload.TransactionReference != ""),
		PaymentReference:     null.NewString(payload.PaymentReference, payload.PaymentReference != ""),
		PaymentStatus:        null.NewString(payload.PaymentStatus, payload.PaymentStatus != ""),
		Currency:             null.NewString(payload.Currency, payload.Currency != ""),
		EventData:            null.StringFrom(string(eventData)),
	}
	if payload.AmountPaid != nil {
		notification.AmountPaid = decimal.NewNullDecimal(*payload.AmountPaid)
	}
	if payload.PaidOn != "" {
		notification.PaidOn = parseMonnifyTime(payload.PaidOn)
	}

	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error(ctx, "Failed to archive Monnify notification",
			zap.String("event_type", eventType), zap.Error(err))
		return nil, err
	}

	u.reconcile(ctx, notification)

	return notification, nil
}

// reconcile advances the matching ledger transaction, if any, using the
// superset update: mapped status plus the settled amount when Monnify
// reported one. Misses are logged and swallowed.
func (u *MonnifyNotificationUsecase) reconcile(ctx context.Context, notification *entities.MonnifyNotification) {
	reference := notification.TransactionReference.String
	if reference == "" {
		reference = notification.PaymentReference.String
	}
	if reference == "" {
		logger.Warn(ctx, "Monnify notification has no reference",
			zap.String("notification_id", notification.ID.String()))
		return
	}

	txn, err := u.ledger.FindTransactionByReference(ctx, reference)
	if err != nil {
		logger.Warn(ctx, "No ledger transaction matched Monnify notification",
			zap.String("notification_id", notification.ID.String()),
			zap.String("reference", reference),
			zap.Error(err))
		return
	}

	mappedStatus := entities.NormalizeStatus(mapMonnifyStatus(notification.PaymentStatus.String))
	description := fmt.Sprintf("Monnify %s", notification.EventType)

	updates := &entities.TransactionUpdate{
		Status:      &mappedStatus,
		ReferenceID: &reference,
		Description: &description,
	}
	if notification.AmountPaid.Valid {
		amount := notification.AmountPaid.Decimal
		updates.Amount = &amount
	}

	updated, err := u.ledger.UpdateTransaction(ctx, txn.ID, updates)
	if err != nil {
		logger.Error(ctx, "Failed to update ledger transaction for Monnify notification",
			zap.String("notification_id", notification.ID.String()),
			zap.String("transaction_id", txn.ID.String()),
			zap.Error(err))
		return
	}

	if err := u.notificationRepo.MarkMatched(ctx, notification.ID); err != nil {
		logger.Error(ctx, "Failed to mark Monnify notification as matched",
			zap.String("notification_id", notification.ID.String()), zap.Error(err))
	} else {
		notification.Matched = true
	}

	u.notifier.notifyStatusChange(ctx, updated, updated.Status)
}

// ReplayUnmatched re-runs reconciliation for archived notifications that
// never matched a ledger transaction. Returns how many matched this pass.
func (u *MonnifyNotificationUsecase) ReplayUnmatched(ctx context.Context, limit int) (int, error) {
	pending, err := u.notificationRepo.ListUnmatched(ctx, limit)
	if err != nil {
		return 0, err
	}

	matched := 0
	for _, n := range pending {
		u.reconcile(ctx, n)
		if n.Matched {
			matched++
		}
	}
	return matched, nil
}

// FindByID fetches one archived notification.
func (u *MonnifyNotificationUsecase) FindByID(ctx context.Context, id uuid.UUID) (*entities.MonnifyNotification, error) {
	return u.notificationRepo.GetByID(ctx, id)
}

// FindAll lists archived notifications, newest first.
func (u *MonnifyNotificationUsecase) FindAll(ctx context.Context, limit, offset int) ([]*entities.MonnifyNotification, error) {
	return u.notificationRepo.List(ctx, limit, offset)
}

// Search filters archived notifications by reference.
func (u *MonnifyNotificationUsecase) Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.MonnifyNotification, error) {
	return u.notificationRepo.Search(ctx, q)
}
