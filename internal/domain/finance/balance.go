// Package finance deriva saldos y estados de cuentas por pagar/cobrar a partir
// de su historial de pagos. Servicio de dominio puro: la fecha de referencia
// siempre llega como parámetro.
package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/money"
)

// Estados derivados de una cuenta abierta.
const (
	StatePendiente = "PENDIENTE" // sin pagos, dentro de plazo
	StateParcial   = "PARCIAL"   // al menos un pago, dentro de plazo
	StateVencido   = "VENCIDO"   // saldo > 0 y fecha de vencimiento pasada
	StatePagado    = "PAGADO"    // saldo pendiente en cero
)

// OverpaymentError el pago (o la suma de pagos) excede el monto original.
type OverpaymentError struct {
	Saldo decimal.Decimal // saldo pendiente antes del pago rechazado
	Monto decimal.Decimal // monto que lo excede
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("sobrepago: monto %s excede el saldo pendiente %s",
		e.Monto.StringFixed(2), e.Saldo.StringFixed(2))
}

// Balance resultado derivado de una cuenta: saldo, estado y días de mora.
type Balance struct {
	SaldoPendiente decimal.Decimal
	Estado         string
	DiasVencido    int // max(0, referencia - vencimiento); 0 si aún no vence
}

// ComputeBalance deriva el balance de una cuenta dado su historial de pagos
// (orden de inserción, el más antiguo primero) y una fecha de referencia.
//
// saldo = montoOriginal - sum(pagos). Si los pagos exceden el original más
// allá de la tolerancia retorna OverpaymentError: un saldo negativo persistido
// indica datos corruptos y nunca se clasifica en silencio.
//
// Precedencia de estados: PAGADO > VENCIDO > PARCIAL > PENDIENTE. Una cuenta
// parcialmente pagada y además vencida reporta VENCIDO.
func ComputeBalance(montoOriginal decimal.Decimal, pagos []entity.Payment, fechaVencimiento, referenceDate time.Time) (Balance, error) {
	if montoOriginal.IsNegative() {
		return Balance{}, fmt.Errorf("%w: monto original negativo", domain.ErrInvalidAmount)
	}

	paid := decimal.Zero
	for _, p := range pagos {
		paid = paid.Add(p.Amount)
	}

	saldo := montoOriginal.Sub(paid)
	if saldo.IsNegative() && !money.IsZeroWithinTolerance(saldo) {
		return Balance{}, &OverpaymentError{Saldo: montoOriginal, Monto: paid}
	}
	if money.IsZeroWithinTolerance(saldo) {
		saldo = decimal.Zero
	}

	b := Balance{
		SaldoPendiente: saldo,
		DiasVencido:    daysOverdue(fechaVencimiento, referenceDate),
	}

	switch {
	case saldo.IsZero():
		b.Estado = StatePagado
	case b.DiasVencido > 0:
		b.Estado = StateVencido
	case len(pagos) > 0:
		b.Estado = StateParcial
	default:
		b.Estado = StatePendiente
	}
	return b, nil
}

// RegisterOptions política para registrar un pago.
type RegisterOptions struct {
	// AllowOverpayment permite pagos que dejen el saldo en negativo. Debe ser
	// una decisión explícita del flujo que llama, nunca un default silencioso.
	AllowOverpayment bool
}

// ValidatePayment verifica que un pago pueda aplicarse contra el saldo actual.
// Rechaza montos no positivos con domain.ErrInvalidAmount y sobrepagos con
// OverpaymentError salvo que opts.AllowOverpayment esté activo.
func ValidatePayment(saldoPendiente, monto decimal.Decimal, opts RegisterOptions) error {
	if !monto.IsPositive() {
		return fmt.Errorf("%w: el pago debe ser mayor a cero", domain.ErrInvalidAmount)
	}
	if opts.AllowOverpayment {
		return nil
	}
	excess := monto.Sub(saldoPendiente)
	if excess.IsPositive() && !money.IsZeroWithinTolerance(excess) {
		return &OverpaymentError{Saldo: saldoPendiente, Monto: monto}
	}
	return nil
}

// daysOverdue días calendario de mora; 0 si la cuenta aún no vence.
func daysOverdue(due, ref time.Time) int {
	d := truncateToDay(ref).Sub(truncateToDay(due))
	days := int(d.Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
