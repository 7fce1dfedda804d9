// Package rental implementa el ledger de rentas (RentalLedger): registro de usuarios,
// checkout/check-in, devengo de tarifa, pagos y custodia de saldos.
package rental

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/application/ports"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	domrental "github.com/jhoicas/Rentacar-api/internal/domain/rental"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// Config parámetros del ledger.
type Config struct {
	OperatorID    string        // principal con permisos de operador
	AccrualPeriod time.Duration // unidad de tiempo de RentFee
}

// LedgerUseCase casos de uso del ledger. Cada operación pública corre en una sola transacción:
// valida, bloquea los registros que toca (usuario → auto → tesorería), muta y escribe el diario.
type LedgerUseCase struct {
	txRunner ports.TxRunner
	repos    repository.Repos // lecturas fuera de transacción
	cfg      Config
	now      ports.Clock
	log      *logger.Logger
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner ports.TxRunner, repos repository.Repos, cfg Config, clock ports.Clock, log *logger.Logger) *LedgerUseCase {
	if cfg.AccrualPeriod <= 0 {
		cfg.AccrualPeriod = domrental.DefaultAccrualPeriod
	}
	if clock == nil {
		clock = time.Now
	}
	return &LedgerUseCase{
		txRunner: txRunner,
		repos:    repos,
		cfg:      cfg,
		now:      clock,
		log:      log.Component("rental"),
	}
}

// AddUser registra al principal con saldo y deuda en cero. Un segundo registro es ErrAlreadyExists.
func (uc *LedgerUseCase) AddUser(ctx context.Context, callerID string, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	lastname := strings.TrimSpace(in.Lastname)
	if callerID == "" || name == "" || lastname == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	user := &entity.User{
		ID:        callerID,
		Name:      name,
		Lastname:  lastname,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		existing, err := repos.Users.GetForUpdate(ctx, callerID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyExists
		}
		return repos.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", callerID).Msg("usuario registrado")
	return toUserResponse(user), nil
}

// GetUser obtiene el registro del principal.
func (uc *LedgerUseCase) GetUser(ctx context.Context, callerID string) (*dto.UserResponse, error) {
	user, err := uc.repos.Users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Deposit abona créditos a la custodia del usuario. No toca la deuda.
func (uc *LedgerUseCase) Deposit(ctx context.Context, callerID string, amount int64) (*dto.UserResponse, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.User
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		user, err := lockUser(ctx, repos, callerID)
		if err != nil {
			return err
		}
		if user.Balance > math.MaxInt64-amount {
			return domain.ErrInvalidInput
		}
		now := uc.now()
		user.Balance += amount
		user.UpdatedAt = now
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}
		out = user
		return repos.Entries.Create(ctx, newEntry(uuid.NewString(), entity.EntryTypeDeposit, user, 0, amount, now))
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", callerID).Int64("amount", amount).Msg("depósito registrado")
	return toUserResponse(out), nil
}

// WithdrawBalance retira créditos de la custodia del usuario.
func (uc *LedgerUseCase) WithdrawBalance(ctx context.Context, callerID string, amount int64) (*dto.UserResponse, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.User
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		user, err := lockUser(ctx, repos, callerID)
		if err != nil {
			return err
		}
		if amount > user.Balance {
			return domain.ErrInsufficientFunds
		}
		now := uc.now()
		user.Balance -= amount
		user.UpdatedAt = now
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}
		out = user
		return repos.Entries.Create(ctx, newEntry(uuid.NewString(), entity.EntryTypeWithdrawal, user, 0, amount, now))
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", callerID).Int64("amount", amount).Msg("retiro de usuario registrado")
	return toUserResponse(out), nil
}

// ListEntries devuelve el diario del principal, más recientes primero.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, callerID string, page dto.PageRequest) (*dto.LedgerEntryListResponse, error) {
	page.DefaultPage()
	user, err := uc.repos.Users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user == nil && callerID != uc.cfg.OperatorID {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.repos.Entries.ListByPrincipal(ctx, callerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEntryResponse(e))
	}
	return &dto.LedgerEntryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *LedgerUseCase) isOperator(callerID string) bool {
	return callerID != "" && callerID == uc.cfg.OperatorID
}

// lockUser bloquea al usuario para la transacción en curso o devuelve ErrUserNotFound.
func lockUser(ctx context.Context, repos repository.Repos, id string) (*entity.User, error) {
	user, err := repos.Users.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func newEntry(txID, typ string, user *entity.User, carID, amount int64, now time.Time) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:            uuid.NewString(),
		TransactionID: txID,
		PrincipalID:   user.ID,
		Type:          typ,
		CarID:         carID,
		Amount:        amount,
		BalanceAfter:  user.Balance,
		DebtAfter:     user.Debt,
		OccurredAt:    now,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Lastname:    u.Lastname,
		Balance:     u.Balance,
		Debt:        u.Debt,
		RentedCarID: u.RentedCarID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.IsRenting() {
		at := u.CheckedOutAt
		out.CheckedOutAt = &at
	}
	return out
}

func toEntryResponse(e *entity.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:            e.ID,
		TransactionID: e.TransactionID,
		Type:          e.Type,
		CarID:         e.CarID,
		Amount:        e.Amount,
		BalanceAfter:  e.BalanceAfter,
		DebtAfter:     e.DebtAfter,
		OccurredAt:    e.OccurredAt,
	}
}
