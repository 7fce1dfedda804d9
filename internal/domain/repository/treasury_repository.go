package repository

import "context"

// TreasuryRepository puerto para el saldo acumulado del operador (TotalOwnerBalance).
type TreasuryRepository interface {
	Get(ctx context.Context) (int64, error)
	// GetForUpdate bloquea la fila de estado del ledger hasta el fin de la transacción.
	GetForUpdate(ctx context.Context) (int64, error)
	Set(ctx context.Context, balance int64) error
}
