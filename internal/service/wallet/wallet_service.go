package wallet

import (
	"context"

	"github.com/avioline/skybook/internal/domain"
	"github.com/avioline/skybook/internal/repository"
)

type WalletUseCase interface {
	Balance(ctx context.Context, userID int64) (int64, error)
	Deduct(ctx context.Context, userID, amountCents int64) (int64, error)
}

type WalletService struct {
	wallets repository.WalletRepository
}

func NewWalletService(wallets repository.WalletRepository) *WalletService {
	return &WalletService{wallets: wallets}
}

func (s *WalletService) Balance(ctx context.Context, userID int64) (int64, error) {
	w, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return w.BalanceCents, nil
}

// Deduct debits the wallet and returns the new balance. The repository
// performs the check and the write as one conditional update.
func (s *WalletService) Deduct(ctx context.Context, userID, amountCents int64) (int64, error) {
	if amountCents <= 0 {
		return 0, domain.NewValidationError("amount must be positive")
	}
	return s.wallets.Debit(ctx, userID, amountCents)
}

var _ WalletUseCase = (*WalletService)(nil)
