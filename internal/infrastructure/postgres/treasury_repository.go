package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

var _ repository.TreasuryRepository = (*TreasuryRepo)(nil)

// TreasuryRepo lee y escribe total_owner_balance en la fila única de ledger_state.
type TreasuryRepo struct {
	q Querier
}

// NewTreasuryRepository construye el adaptador de la tesorería del operador.
func NewTreasuryRepository(q Querier) *TreasuryRepo {
	return &TreasuryRepo{q: q}
}

func (r *TreasuryRepo) Get(ctx context.Context) (int64, error) {
	return r.get(ctx, `SELECT total_owner_balance FROM ledger_state WHERE id = 1`)
}

func (r *TreasuryRepo) GetForUpdate(ctx context.Context) (int64, error) {
	return r.get(ctx, `SELECT total_owner_balance FROM ledger_state WHERE id = 1 FOR UPDATE`)
}

func (r *TreasuryRepo) get(ctx context.Context, query string) (int64, error) {
	var balance int64
	if err := r.q.QueryRow(ctx, query).Scan(&balance); err != nil {
		return 0, fmt.Errorf("get treasury: %w", err)
	}
	return balance, nil
}

func (r *TreasuryRepo) Set(ctx context.Context, balance int64) error {
	if _, err := r.q.Exec(ctx, `UPDATE ledger_state SET total_owner_balance = $1 WHERE id = 1`, balance); err != nil {
		return fmt.Errorf("set treasury: %w", err)
	}
	return nil
}
