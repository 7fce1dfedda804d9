package dto

import "time"

// CheckInResponse resultado de devolver un auto.
type CheckInResponse struct {
	CarID       int64 `json:"car_id"`
	Fee         int64 `json:"fee"`
	Debt        int64 `json:"debt"`
	ElapsedSecs int64 `json:"elapsed_seconds"`
}

// QuoteResponse tarifa que se devengaría si el usuario devolviera el auto ahora.
type QuoteResponse struct {
	CarID       int64     `json:"car_id"`
	CheckedOut  time.Time `json:"checked_out_at"`
	ElapsedSecs int64     `json:"elapsed_seconds"`
	Fee         int64     `json:"fee"`
}

// PaymentResponse resultado de MakePayment (pago parcial incluido).
type PaymentResponse struct {
	Paid    int64 `json:"paid"`
	Balance int64 `json:"balance"`
	Debt    int64 `json:"debt"`
}

// OwnerBalanceResponse saldo acumulado del operador.
type OwnerBalanceResponse struct {
	TotalPayment int64 `json:"total_payment"`
}

// LedgerEntryResponse asiento del diario.
type LedgerEntryResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	Type          string    `json:"type"`
	CarID         int64     `json:"car_id,omitempty"`
	Amount        int64     `json:"amount"`
	BalanceAfter  int64     `json:"balance_after"`
	DebtAfter     int64     `json:"debt_after"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// LedgerEntryListResponse lista paginada de asientos.
type LedgerEntryListResponse struct {
	Items []LedgerEntryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
