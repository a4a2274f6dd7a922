package wallet

import (
	"context"
	"testing"

	"github.com/avioline/skybook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Debit(ctx context.Context, userID, amountCents int64) (int64, error) {
	args := m.Called(ctx, userID, amountCents)
	return args.Get(0).(int64), args.Error(1)
}

func TestWalletService_Balance(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByUserID", ctx, int64(7)).Return(&domain.Wallet{UserID: 7, BalanceCents: 50000}, nil).Once()

	balance, err := service.Balance(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), balance)
	mockRepo.AssertExpectations(t)
}

func TestWalletService_Balance_NotFound(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByUserID", ctx, int64(99)).Return(nil, domain.ErrWalletNotFound).Once()

	balance, err := service.Balance(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	assert.Zero(t, balance)
}

func TestWalletService_Deduct(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Debit", ctx, int64(7), int64(4500)).Return(int64(45500), nil).Once()

	balance, err := service.Deduct(ctx, 7, 4500)

	assert.NoError(t, err)
	assert.Equal(t, int64(45500), balance)
	mockRepo.AssertExpectations(t)
}

func TestWalletService_Deduct_NonPositiveAmount(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	for _, amount := range []int64{0, -100} {
		balance, err := service.Deduct(context.Background(), 7, amount)
		assert.True(t, domain.IsValidation(err))
		assert.Zero(t, balance)
	}
	mockRepo.AssertNotCalled(t, "Debit")
}

func TestWalletService_Deduct_Insufficient(t *testing.T) {
	mockRepo := &MockWalletRepository{}
	service := NewWalletService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Debit", ctx, int64(7), int64(99999)).Return(int64(0), domain.ErrInsufficientFunds).Once()

	balance, err := service.Deduct(ctx, 7, 99999)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Zero(t, balance)
}
