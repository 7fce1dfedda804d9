package repository

import (
	"context"

	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
)

// LedgerEntryRepository puerto del diario de asientos (solo inserción).
type LedgerEntryRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	// ListByPrincipal devuelve los asientos más recientes primero.
	ListByPrincipal(ctx context.Context, principalID string, limit, offset int) ([]*entity.LedgerEntry, error)
}
