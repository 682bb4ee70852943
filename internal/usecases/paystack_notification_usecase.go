package usecases

import (
	"context"
	"encoding/json"
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

const (
	// Paystack event names this service reconciles against the ledger.
	paystackEventChargeSuccess   = "charge.success"
	paystackEventTransferSuccess = "transfer.success"
)

// PaystackNotificationUsecase archives incoming Paystack webhooks and maps
// them onto ledger transactions by reference. Archiving is the primary
// obligation: matching and e-mail are best-effort and never fail a delivery
// that parsed.
type PaystackNotificationUsecase struct {
	notificationRepo repositories.PaystackNotificationRepository
	ledger           *LedgerUsecase
	notifier         *paymentNotifier
}

// NewPaystackNotificationUsecase creates a new Paystack notification usecase
func NewPaystackNotificationUsecase(
	notificationRepo repositories.PaystackNotificationRepository,
	walletRepo repositories.WalletRepository,
	userRepo repositories.UserRepository,
	ledger *LedgerUsecase,
	mailer Mailer,
) *PaystackNotificationUsecase {
	return &PaystackNotificationUsecase{
		notificationRepo: notificationRepo,
		ledger:           ledger,
		notifier:         newPaymentNotifier(walletRepo, userRepo, mailer),
	}
}

// mapPaystackStatus maps Paystack's status vocabulary onto ledger statuses.
// Unknown tokens pass through uppercased so the raw provider state stays
// visible on the transaction.
func mapPaystackStatus(raw string) string {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "success", "successful":
		return string(entities.TransactionStatusSuccess)
	case "failed":
		return string(entities.TransactionStatusFailed)
	case "":
		return string(entities.TransactionStatusPending)
	default:
		return strings.ToUpper(s)
	}
}

type paystackEventData struct {
	ID              int64           `json:"id"`
	Domain          string          `json:"domain"`
	Status          string          `json:"status"`
	Reference       string          `json:"reference"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	GatewayResponse string          `json:"gateway_response"`
	Channel         string          `json:"channel"`
	IPAddress       string          `json:"ip_address"`
	PaidAt          string          `json:"paid_at"`
	Customer        json.RawMessage `json:"customer"`
	Authorization   json.RawMessage `json:"authorization"`
	Recipient       json.RawMessage `json:"recipient"`
}

// Process handles one webhook delivery. charge.success and transfer.success
// are archived and reconciled; any other event is logged and skipped. The
// archived record is returned even when no ledger transaction matched.
func (u *PaystackNotificationUsecase) Process(ctx context.Context, event string, data json.RawMessage) (*entities.PaystackNotification, error) {
	if event == "" || len(data) == 0 {
		return nil, domainerrors.BadRequest("invalid Paystack notification data")
	}

	if event != paystackEventChargeSuccess && event != paystackEventTransferSuccess {
		logger.Info(ctx, "Ignoring unhandled Paystack event", zap.String("event", event))
		return nil, nil
	}

	var payload paystackEventData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, domainerrors.BadRequest("invalid Paystack notification data")
	}

	notification := u.toNotification(event, &payload)
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error(ctx, "Failed to archive Paystack notification",
			zap.String("event", event), zap.Error(err))
		return nil, err
	}

	u.reconcile(ctx, notification)

	return notification, nil
}

// reconcile advances the matching ledger transaction, if any. Misses and
// storage errors are logged and swallowed: the notification is already
// archived and the replay job can pick it up later.
func (u *PaystackNotificationUsecase) reconcile(ctx context.Context, notification *entities.PaystackNotification) {
	if notification.Reference == "" {
		logger.Warn(ctx, "Paystack notification has no reference",
			zap.String("notification_id", notification.ID.String()))
		return
	}

	mappedStatus := mapPaystackStatus(notification.Status)

	txn, err := u.ledger.UpdateTransactionStatusByReference(ctx, notification.Reference, mappedStatus)
	if err != nil {
		logger.Warn(ctx, "No ledger transaction matched Paystack notification",
			zap.String("notification_id", notification.ID.String()),
			zap.String("reference", notification.Reference),
			zap.Error(err))
		return
	}

	if err := u.notificationRepo.MarkMatched(ctx, notification.ID); err != nil {
		logger.Error(ctx, "Failed to mark Paystack notification as matched",
			zap.String("notification_id", notification.ID.String()), zap.Error(err))
	} else {
		notification.Matched = true
	}

	u.notifier.notifyStatusChange(ctx, txn, txn.Status)
}

// ReplayUnmatched re-runs reconciliation for archived notifications that
// never matched a ledger transaction, e.g. because the webhook arrived before
// the transaction was created. Returns how many matched this pass.
func (u *PaystackNotificationUsecase) ReplayUnmatched(ctx context.Context, limit int) (int, error) {
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
func (u *PaystackNotificationUsecase) FindByID(ctx context.Context, id uuid.UUID) (*entities.PaystackNotification, error) {
	return u.notificationRepo.GetByID(ctx, id)
}

// FindAll lists archived notifications, newest first.
func (u *PaystackNotificationUsecase) FindAll(ctx context.Context, limit, offset int) ([]*entities.PaystackNotification, error) {
	return u.notificationRepo.List(ctx, limit, offset)
}

// Search filters archived notifications by reference and/or status.
func (u *PaystackNotificationUsecase) Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.PaystackNotification, error) {
	return u.notificationRepo.Search(ctx, q)
}

func (u *PaystackNotificationUsecase) toNotification(event string, payload *paystackEventData) *entities.PaystackNotification {
	n := &entities.PaystackNotification{
		PaystackID: payload.ID,
		Event:      event,
		Status:     payload.Status,
		Reference:  payload.Reference,
		Amount:     payload.Amount,
		Currency:   payload.Currency,
		Domain:     null.NewString(payload.Domain, payload.Domain != ""),
	}

	switch event {
	case paystackEventTransferSuccess:
		// Transfer payloads carry the counterparty under "recipient".
		if len(payload.Recipient) > 0 {
			n.Customer = null.StringFrom(string(payload.Recipient))
		}
	default:
		n.GatewayResponse = null.NewString(payload.GatewayResponse, payload.GatewayResponse != "")
		n.Channel = null.NewString(payload.Channel, payload.Channel != "")
		n.IPAddress = null.NewString(payload.IPAddress, payload.IPAddress != "")
		if len(payload.Customer) > 0 {
			n.Customer = null.StringFrom(string(payload.Customer))
		}
		if len(payload.Authorization) > 0 {
			n.Authorization = null.StringFrom(string(payload.Authorization))
		}
		if paidAt, err := time.Parse(time.RFC3339, payload.PaidAt); err == nil {
			n.PaidAt = &paidAt
		}
	}

	return n
}
