// Package report agrega lotes y cuentas abiertas en resúmenes para los
// reportes gerenciales. Roll-ups puros sin estado oculto: se recalculan bajo
// demanda desde el snapshot de entidades que reciben.
package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
)

// LotBucket conteo y valor de inventario de un estado de vencimiento.
type LotBucket struct {
	Count int
	Value decimal.Decimal // sum(cantidad × costo unitario)
}

// LotSummary resumen de lotes por estado de vencimiento.
type LotSummary struct {
	ByState    map[expiry.State]LotBucket
	TotalCount int
	TotalValue decimal.Decimal
}

// SummarizeLots clasifica cada lote con los umbrales dados y acumula conteo y
// valor por estado. Colección vacía produce totales en cero, nunca error.
func SummarizeLots(lots []entity.Lot, referenceDate time.Time, th expiry.Thresholds) LotSummary {
	s := LotSummary{
		ByState:    emptyLotBuckets(),
		TotalValue: decimal.Zero,
	}
	for _, lot := range lots {
		r := expiry.Classify(lot.ExpiryDate, referenceDate, th)
		b := s.ByState[r.State]
		b.Count++
		b.Value = b.Value.Add(lot.Value())
		s.ByState[r.State] = b

		s.TotalCount++
		s.TotalValue = s.TotalValue.Add(lot.Value())
	}
	return s
}

// ExpiredValue valor total del inventario vencido.
func (s LotSummary) ExpiredValue() decimal.Decimal {
	return s.ByState[expiry.StateVencido].Value
}

func emptyLotBuckets() map[expiry.State]LotBucket {
	return map[expiry.State]LotBucket{
		expiry.StateVigente:       {Value: decimal.Zero},
		expiry.StateProximoVencer: {Value: decimal.Zero},
		expiry.StateCritico:       {Value: decimal.Zero},
		expiry.StateVencido:       {Value: decimal.Zero},
	}
}

// AccountWithPayments cuenta abierta junto a su historial de pagos, la unidad
// de entrada del resumen financiero.
type AccountWithPayments struct {
	Account  entity.OpenAccount
	Payments []entity.Payment
}

// AccountBucket acumulado de un estado de cuenta.
type AccountBucket struct {
	Count        int
	TotalAmount  decimal.Decimal // montos originales
	TotalPaid    decimal.Decimal
	TotalPending decimal.Decimal
}

// AccountSummary resumen de cuentas por estado derivado.
type AccountSummary struct {
	ByState      map[string]AccountBucket
	TotalCount   int
	TotalPending decimal.Decimal // saldo pendiente global
	OverdueCount int             // cuentas en estado VENCIDO
	Skipped      int             // cuentas con historial inconsistente (sobrepago)
}

// SummarizeAccounts deriva el balance de cada cuenta a referenceDate y acumula
// por estado. Las cuentas cuyo historial no es derivable (sobrepago más allá de
// tolerancia) se cuentan en Skipped en lugar de abortar el reporte completo.
func SummarizeAccounts(accounts []AccountWithPayments, referenceDate time.Time) AccountSummary {
	s := AccountSummary{
		ByState:      emptyAccountBuckets(),
		TotalPending: decimal.Zero,
	}
	for _, ap := range accounts {
		bal, err := finance.ComputeBalance(ap.Account.OriginalAmount, ap.Payments, ap.Account.DueDate, referenceDate)
		if err != nil {
			s.Skipped++
			continue
		}

		paid := ap.Account.OriginalAmount.Sub(bal.SaldoPendiente)
		b := s.ByState[bal.Estado]
		b.Count++
		b.TotalAmount = b.TotalAmount.Add(ap.Account.OriginalAmount)
		b.TotalPaid = b.TotalPaid.Add(paid)
		b.TotalPending = b.TotalPending.Add(bal.SaldoPendiente)
		s.ByState[bal.Estado] = b

		s.TotalCount++
		s.TotalPending = s.TotalPending.Add(bal.SaldoPendiente)
		if bal.Estado == finance.StateVencido {
			s.OverdueCount++
		}
	}
	return s
}

func emptyAccountBuckets() map[string]AccountBucket {
	states := []string{finance.StatePendiente, finance.StateParcial, finance.StateVencido, finance.StatePagado}
	m := make(map[string]AccountBucket, len(states))
	for _, st := range states {
		m[st] = AccountBucket{
			TotalAmount:  decimal.Zero,
			TotalPaid:    decimal.Zero,
			TotalPending: decimal.Zero,
		}
	}
	return m
}
