package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del store, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback y ningún cambio queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repos) error) error
}

// Clock fuente única de "ahora"; se lee una sola vez por operación.
type Clock func() time.Time
