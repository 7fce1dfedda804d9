package rental_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/application/rental"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
)

// captureGenerator registra lo que recibe y devuelve un PDF mínimo.
type captureGenerator struct {
	user     *entity.User
	entries  []*entity.LedgerEntry
	issuedAt time.Time
	err      error
}

func (g *captureGenerator) GenerateStatementPDF(_ context.Context, user *entity.User, entries []*entity.LedgerEntry, issuedAt time.Time) ([]byte, error) {
	g.user, g.entries, g.issuedAt = user, entries, issuedAt
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.4"), nil
}

func TestStatement_UsaSaldosYDiario(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, alice, "Alice", "Doe")
	_, err := e.ledger.Deposit(e.ctx, alice, 50)
	require.NoError(t, err)
	_, err = e.ledger.WithdrawBalance(e.ctx, alice, 20)
	require.NoError(t, err)

	gen := &captureGenerator{}
	uc := rental.NewStatementUseCase(e.store.Repos().Users, e.store.Repos().Entries, gen, e.clock.Now)

	pdf, filename, err := uc.Statement(e.ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "estado-cuenta-20240301.pdf", filename)

	require.NotNil(t, gen.user)
	assert.Equal(t, int64(30), gen.user.Balance)
	require.Len(t, gen.entries, 2)
	assert.Equal(t, entity.EntryTypeWithdrawal, gen.entries[0].Type)
	assert.True(t, e.clock.Now().Equal(gen.issuedAt))
}

func TestStatement_UsuarioNoRegistrado(t *testing.T) {
	e := newEnv(t)
	uc := rental.NewStatementUseCase(e.store.Repos().Users, e.store.Repos().Entries, &captureGenerator{}, e.clock.Now)

	_, _, err := uc.Statement(e.ctx, bob)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStatement_ErrorDelGenerador(t *testing.T) {
	e := newEnv(t)
	_, err := e.ledger.AddUser(e.ctx, alice, dto.RegisterUserRequest{Name: "Alice", Lastname: "Doe"})
	require.NoError(t, err)
	boom := errors.New("sin fuentes")
	uc := rental.NewStatementUseCase(e.store.Repos().Users, e.store.Repos().Entries, &captureGenerator{err: boom}, e.clock.Now)

	_, _, err = uc.Statement(e.ctx, alice)
	assert.ErrorIs(t, err, boom)
}
