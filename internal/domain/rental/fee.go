package rental

import (
	"math"
	"time"
)

// DefaultAccrualPeriod periodo de devengo por defecto (un minuto).
const DefaultAccrualPeriod = time.Minute

// Fee calcula la tarifa devengada (servicio de dominio).
// Tarifa = floor(elapsed / period) * rentFee. Un elapsed negativo (reloj hacia atrás) devenga 0.
// Si el producto no cabe en int64 la tarifa se satura en math.MaxInt64.
func Fee(elapsed, period time.Duration, rentFee int64) int64 {
	if elapsed <= 0 || period <= 0 || rentFee <= 0 {
		return 0
	}
	periods := int64(elapsed / period)
	if periods > math.MaxInt64/rentFee {
		return math.MaxInt64
	}
	return periods * rentFee
}

// headroom cuánto se puede sumar a v sin desbordar int64.
func headroom(v int64) int64 {
	return math.MaxInt64 - max(v, 0)
}
