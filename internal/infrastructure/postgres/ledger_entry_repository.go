package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo diario de asientos sobre PostgreSQL. Solo inserción.
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador del diario.
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// Create inserta un asiento.
func (r *LedgerEntryRepo) Create(ctx context.Context, e *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, transaction_id, principal_id, type, car_id, amount, balance_after, debt_after, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.TransactionID, e.PrincipalID, e.Type, e.CarID, e.Amount, e.BalanceAfter, e.DebtAfter, e.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByPrincipal devuelve los asientos del principal, más recientes primero.
func (r *LedgerEntryRepo) ListByPrincipal(ctx context.Context, principalID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id::text, transaction_id::text, principal_id, type, car_id, amount, balance_after, debt_after, occurred_at
		FROM ledger_entries
		WHERE principal_id = $1
		ORDER BY seq DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, principalID, limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(
			&e.ID, &e.TransactionID, &e.PrincipalID, &e.Type, &e.CarID, &e.Amount,
			&e.BalanceAfter, &e.DebtAfter, &e.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
