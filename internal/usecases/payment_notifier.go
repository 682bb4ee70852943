package usecases

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"pay-ledger.backend/internal/domain/entities"
	"pay-ledger.backend/internal/domain/repositories"
	"pay-ledger.backend/pkg/logger"
)

// Mailer dispatches a message with text and HTML alternatives.
type Mailer interface {
	Send(to, subject, text, html string) error
}

// paymentNotifier e-mails the wallet owner after a reconciled status change.
// Every step is best-effort: failures are logged and swallowed so they can
// never roll back or mask a committed ledger mutation.
type paymentNotifier struct {
	walletRepo repositories.WalletRepository
	userRepo   repositories.UserRepository
	mailer     Mailer
}

func newPaymentNotifier(walletRepo repositories.WalletRepository, userRepo repositories.UserRepository, mailer Mailer) *paymentNotifier {
	return &paymentNotifier{
		walletRepo: walletRepo,
		userRepo:   userRepo,
		mailer:     mailer,
	}
}

func (n *paymentNotifier) notifyStatusChange(ctx context.Context, txn *entities.WalletTransaction, status entities.TransactionStatus) {
	if n.mailer == nil {
		return
	}

	wallet, err := n.walletRepo.GetByID(ctx, txn.WalletID)
	if err != nil {
		logger.Error(ctx, "Failed to load wallet for payment notification",
			zap.String("transaction_id", txn.ID.String()), zap.Error(err))
		return
	}

	user, err := n.userRepo.GetByID(ctx, wallet.UserID)
	if err != nil {
		logger.Error(ctx, "Failed to load wallet owner for payment notification",
			zap.String("wallet_id", wallet.ID.String()), zap.Error(err))
		return
	}

	subject := fmt.Sprintf("Payment update: %s", status)
	text := fmt.Sprintf(
		"Hi %s,\n\nYour wallet transaction (%s) has been updated to status %s. Amount: %s.\n\nThanks.",
		user.Username, txn.ID, status, txn.Amount,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your wallet transaction <strong>%s</strong> has been updated to status <strong>%s</strong>.</p><p>Amount: %s</p><p>Thanks.</p>",
		user.Username, txn.ID, status, txn.Amount,
	)

	if err := n.mailer.Send(user.Email, subject, text, html); err != nil {
		logger.Error(ctx, "Failed to send payment notification email",
			zap.String("transaction_id", txn.ID.String()), zap.Error(err))
		return
	}

	logger.Info(ctx, "Payment notification email sent",
		zap.String("transaction_id", txn.ID.String()),
		zap.String("status", string(status)))
}
