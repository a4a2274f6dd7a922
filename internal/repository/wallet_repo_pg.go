package repository

import (
	"context"
	"errors"

	"github.com/avioline/skybook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	Debit(ctx context.Context, userID, amountCents int64) (int64, error)
}

type PGWalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(db *pgxpool.Pool) WalletRepository {
	return &PGWalletRepository{db: db}
}

func (r *PGWalletRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, balance_cents, updated_at FROM wallets WHERE user_id=$1`, userID)
	var w domain.Wallet
	if err := row.Scan(&w.UserID, &w.BalanceCents, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	return &w, nil
}

// Debit decrements the balance in a single conditional update. Two concurrent
// debits cannot both pass the balance check: the losing one matches zero rows
// and is reported as insufficient funds (or a missing wallet).
func (r *PGWalletRepository) Debit(ctx context.Context, userID, amountCents int64) (int64, error) {
	var remaining int64
	err := r.db.QueryRow(ctx, `UPDATE wallets SET balance_cents = balance_cents - $1, updated_at = now()
		WHERE user_id=$2 AND balance_cents >= $1
		RETURNING balance_cents`, amountCents, userID).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	if _, err := r.GetByUserID(ctx, userID); err != nil {
		return 0, err
	}
	return 0, domain.ErrInsufficientFunds
}

var _ WalletRepository = (*PGWalletRepository)(nil)
