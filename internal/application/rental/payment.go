package rental

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	domrental "github.com/jhoicas/Rentacar-api/internal/domain/rental"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

// MakePayment liquida min(balance, deuda) contra la tesorería del operador.
// El pago parcial no es error; sin deuda o sin saldo es un no-op exitoso.
func (uc *LedgerUseCase) MakePayment(ctx context.Context, callerID string) (*dto.PaymentResponse, error) {
	var out dto.PaymentResponse
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		user, err := lockUser(ctx, repos, callerID)
		if err != nil {
			return err
		}
		out = dto.PaymentResponse{Balance: user.Balance, Debt: user.Debt}
		if user.Debt == 0 || user.Balance == 0 {
			return nil
		}
		treasury, err := repos.Treasury.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		now := uc.now()
		paid := domrental.Settle(user, treasury, now)
		if paid == 0 {
			return nil
		}
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}
		if err := repos.Treasury.Set(ctx, treasury+paid); err != nil {
			return err
		}
		out = dto.PaymentResponse{Paid: paid, Balance: user.Balance, Debt: user.Debt}
		return repos.Entries.Create(ctx, newEntry(uuid.NewString(), entity.EntryTypePayment, user, 0, paid, now))
	})
	if err != nil {
		return nil, err
	}
	if out.Paid > 0 {
		uc.log.Info().Str("user_id", callerID).Int64("paid", out.Paid).Int64("debt", out.Debt).Msg("pago aplicado")
	}
	return &out, nil
}

// WithdrawOwnerBalance retira ingresos acumulados de la tesorería (solo operador).
func (uc *LedgerUseCase) WithdrawOwnerBalance(ctx context.Context, callerID string, amount int64) (*dto.OwnerBalanceResponse, error) {
	if !uc.isOperator(callerID) {
		return nil, domain.ErrUnauthorized
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out dto.OwnerBalanceResponse
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		treasury, err := repos.Treasury.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if amount > treasury {
			return domain.ErrInsufficientFunds
		}
		remaining := treasury - amount
		if err := repos.Treasury.Set(ctx, remaining); err != nil {
			return err
		}
		out.TotalPayment = remaining
		return repos.Entries.Create(ctx, &entity.LedgerEntry{
			ID:            uuid.NewString(),
			TransactionID: uuid.NewString(),
			PrincipalID:   callerID,
			Type:          entity.EntryTypeOwnerWithdrawal,
			Amount:        amount,
			BalanceAfter:  remaining,
			OccurredAt:    uc.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("amount", amount).Int64("remaining", out.TotalPayment).Msg("retiro de operador registrado")
	return &out, nil
}

// GetTotalPayment devuelve el saldo acumulado de la tesorería (solo operador).
func (uc *LedgerUseCase) GetTotalPayment(ctx context.Context, callerID string) (*dto.OwnerBalanceResponse, error) {
	if !uc.isOperator(callerID) {
		return nil, domain.ErrUnauthorized
	}
	total, err := uc.repos.Treasury.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OwnerBalanceResponse{TotalPayment: total}, nil
}
