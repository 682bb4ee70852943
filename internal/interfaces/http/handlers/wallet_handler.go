package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
	"pay-ledger.backend/internal/interfaces/http/middleware"
	"pay-ledger.backend/internal/interfaces/http/response"
	"pay-ledger.backend/internal/usecases"
)

type ledgerService interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	CreatePendingTransaction(ctx context.Context, userID uuid.UUID, input *entities.CreateTransactionInput) (*entities.WalletTransaction, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID) ([]*entities.WalletTransaction, error)
}

// WalletHandler handles wallet endpoints
type WalletHandler struct {
	ledger ledgerService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(ledger *usecases.LedgerUsecase) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// GetWallet returns the caller's wallet, creating it on first access
// GET /api/v1/wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.ledger.GetOrCreateWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet})
}

// ListTransactions lists the caller's wallet transactions, newest first
// GET /api/v1/wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.ledger.GetOrCreateWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	transactions, err := h.ledger.ListTransactions(c.Request.Context(), wallet.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if transactions == nil {
		transactions = []*entities.WalletTransaction{}
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": transactions})
}

// CreateTransaction records a PENDING transaction against the caller's wallet
// POST /api/v1/wallet/transactions
func (h *WalletHandler) CreateTransaction(c *gin.Context) {
	var input entities.CreateTransactionInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	txn, err := h.ledger.CreatePendingTransaction(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":     "Transaction created",
		"transaction": txn,
	})
}
