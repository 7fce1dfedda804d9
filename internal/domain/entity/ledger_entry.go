package entity

import "time"

// Tipos de asiento del diario.
const (
	EntryTypeDeposit         = "DEPOSIT"          // abono a custodia
	EntryTypeWithdrawal      = "WITHDRAWAL"       // retiro del usuario
	EntryTypeCheckOut        = "CHECK_OUT"        // inicio de renta (monto 0)
	EntryTypeCheckIn         = "CHECK_IN"         // fin de renta, monto = tarifa devengada
	EntryTypePayment         = "PAYMENT"          // saldo → tesorería
	EntryTypeOwnerWithdrawal = "OWNER_WITHDRAWAL" // retiro del operador
)

// LedgerEntry asiento inmutable del diario; se escribe en la misma transacción que la mutación.
// BalanceAfter y DebtAfter reflejan al principal tras el asiento (para el operador: tesorería, 0).
type LedgerEntry struct {
	ID            string
	TransactionID string
	PrincipalID   string
	Type          string
	CarID         int64
	Amount        int64
	BalanceAfter  int64
	DebtAfter     int64
	OccurredAt    time.Time
}
