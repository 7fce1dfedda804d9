package rental

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

// statementEntryLimit máximo de asientos incluidos en un estado de cuenta.
const statementEntryLimit = 200

// StatementGenerator genera la representación PDF del estado de cuenta (implementación en infraestructura).
type StatementGenerator interface {
	GenerateStatementPDF(ctx context.Context, user *entity.User, entries []*entity.LedgerEntry, issuedAt time.Time) ([]byte, error)
}

// StatementUseCase arma el estado de cuenta del usuario (saldos + diario) en PDF.
type StatementUseCase struct {
	userRepo  repository.UserRepository
	entryRepo repository.LedgerEntryRepository
	generator StatementGenerator
	now       func() time.Time
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	userRepo repository.UserRepository,
	entryRepo repository.LedgerEntryRepository,
	generator StatementGenerator,
	clock func() time.Time,
) *StatementUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &StatementUseCase{userRepo: userRepo, entryRepo: entryRepo, generator: generator, now: clock}
}

// Statement devuelve el PDF y un nombre de archivo sugerido.
func (uc *StatementUseCase) Statement(ctx context.Context, callerID string) ([]byte, string, error) {
	user, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}
	entries, err := uc.entryRepo.ListByPrincipal(ctx, callerID, statementEntryLimit, 0)
	if err != nil {
		return nil, "", err
	}
	issuedAt := uc.now()
	pdf, err := uc.generator.GenerateStatementPDF(ctx, user, entries, issuedAt)
	if err != nil {
		return nil, "", fmt.Errorf("estado de cuenta: %w", err)
	}
	return pdf, fmt.Sprintf("estado-cuenta-%s.pdf", issuedAt.Format("20060102")), nil
}
