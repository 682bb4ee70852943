package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"pay-ledger.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

func (m *MockUnitOfWork) WithLock(ctx context.Context) context.Context {
	m.Called(ctx)
	return ctx
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

// Mock WalletTransactionRepository
type MockWalletTransactionRepository struct {
	mock.Mock
}

func (m *MockWalletTransactionRepository) Create(ctx context.Context, txn *entities.WalletTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockWalletTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WalletTransaction), args.Error(1)
}

func (m *MockWalletTransactionRepository) GetByReference(ctx context.Context, referenceID string) (*entities.WalletTransaction, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WalletTransaction), args.Error(1)
}

func (m *MockWalletTransactionRepository) Update(ctx context.Context, txn *entities.WalletTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockWalletTransactionRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]*entities.WalletTransaction, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WalletTransaction), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// Mock PaystackNotificationRepository
type MockPaystackNotificationRepository struct {
	mock.Mock
}

func (m *MockPaystackNotificationRepository) Create(ctx context.Context, n *entities.PaystackNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockPaystackNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaystackNotification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaystackNotification), args.Error(1)
}

func (m *MockPaystackNotificationRepository) List(ctx context.Context, limit, offset int) ([]*entities.PaystackNotification, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaystackNotification), args.Error(1)
}

func (m *MockPaystackNotificationRepository) Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.PaystackNotification, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaystackNotification), args.Error(1)
}

func (m *MockPaystackNotificationRepository) ListUnmatched(ctx context.Context, limit int) ([]*entities.PaystackNotification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaystackNotification), args.Error(1)
}

func (m *MockPaystackNotificationRepository) MarkMatched(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock MonnifyNotificationRepository
type MockMonnifyNotificationRepository struct {
	mock.Mock
}

func (m *MockMonnifyNotificationRepository) Create(ctx context.Context, n *entities.MonnifyNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockMonnifyNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MonnifyNotification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MonnifyNotification), args.Error(1)
}

func (m *MockMonnifyNotificationRepository) List(ctx context.Context, limit, offset int) ([]*entities.MonnifyNotification, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MonnifyNotification), args.Error(1)
}

func (m *MockMonnifyNotificationRepository) Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.MonnifyNotification, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MonnifyNotification), args.Error(1)
}

func (m *MockMonnifyNotificationRepository) ListUnmatched(ctx context.Context, limit int) ([]*entities.MonnifyNotification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MonnifyNotification), args.Error(1)
}

func (m *MockMonnifyNotificationRepository) MarkMatched(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, text, html string) error {
	args := m.Called(to, subject, text, html)
	return args.Error(0)
}
