package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
	"github.com/jvargas/Finanzas-api/internal/domain/report"
)

var ref = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func lot(qty, cost string, daysOut *int) entity.Lot {
	l := entity.Lot{
		Quantity: dec(qty),
		UnitCost: dec(cost),
	}
	if daysOut != nil {
		d := ref.AddDate(0, 0, *daysOut)
		l.ExpiryDate = &d
	}
	return l
}

func days(n int) *int { return &n }

func TestSummarizeLots_Vacio(t *testing.T) {
	s := report.SummarizeLots(nil, ref, expiry.DefaultThresholds())

	assert.Equal(t, 0, s.TotalCount)
	assert.True(t, s.TotalValue.IsZero())
	for state, b := range s.ByState {
		assert.Equal(t, 0, b.Count, "estado %s", state)
		assert.True(t, b.Value.IsZero(), "estado %s", state)
	}
}

func TestSummarizeLots_ClasificaYValora(t *testing.T) {
	lots := []entity.Lot{
		lot("10", "5.00", nil),       // VIGENTE, sin vencimiento, valor 50
		lot("4", "2.50", days(90)),   // VIGENTE, valor 10
		lot("2", "3.00", days(20)),   // PROXIMO_VENCER, valor 6
		lot("1", "7.00", days(0)),    // CRITICO, vence hoy, valor 7
		lot("5", "10.00", days(-3)),  // VENCIDO, valor 50
	}

	s := report.SummarizeLots(lots, ref, expiry.DefaultThresholds())

	assert.Equal(t, 5, s.TotalCount)
	assert.True(t, s.TotalValue.Equal(dec("123.00")), "total = %s", s.TotalValue)

	assert.Equal(t, 2, s.ByState[expiry.StateVigente].Count)
	assert.True(t, s.ByState[expiry.StateVigente].Value.Equal(dec("60.00")))
	assert.Equal(t, 1, s.ByState[expiry.StateProximoVencer].Count)
	assert.Equal(t, 1, s.ByState[expiry.StateCritico].Count)
	assert.Equal(t, 1, s.ByState[expiry.StateVencido].Count)
	assert.True(t, s.ExpiredValue().Equal(dec("50.00")))
}

func cuenta(original string, due time.Time, montos ...string) report.AccountWithPayments {
	ap := report.AccountWithPayments{
		Account: entity.OpenAccount{
			OriginalAmount: dec(original),
			DueDate:        due,
		},
	}
	for _, m := range montos {
		ap.Payments = append(ap.Payments, entity.Payment{Amount: dec(m)})
	}
	return ap
}

func TestSummarizeAccounts_Vacio(t *testing.T) {
	s := report.SummarizeAccounts(nil, ref)

	assert.Equal(t, 0, s.TotalCount)
	assert.Equal(t, 0, s.OverdueCount)
	assert.True(t, s.TotalPending.IsZero())
}

func TestSummarizeAccounts_PorEstado(t *testing.T) {
	manana := ref.AddDate(0, 0, 1)
	ayer := ref.AddDate(0, 0, -1)

	accounts := []report.AccountWithPayments{
		cuenta("1000.00", manana),                     // PENDIENTE, saldo 1000
		cuenta("500.00", manana, "200.00"),            // PARCIAL, saldo 300
		cuenta("800.00", ayer, "100.00"),              // VENCIDO, saldo 700
		cuenta("250.00", ayer, "250.00"),              // PAGADO
	}

	s := report.SummarizeAccounts(accounts, ref)

	assert.Equal(t, 4, s.TotalCount)
	assert.Equal(t, 1, s.OverdueCount)
	assert.True(t, s.TotalPending.Equal(dec("2000.00")), "pendiente = %s", s.TotalPending)

	assert.Equal(t, 1, s.ByState[finance.StatePendiente].Count)
	assert.Equal(t, 1, s.ByState[finance.StateParcial].Count)
	assert.True(t, s.ByState[finance.StateParcial].TotalPaid.Equal(dec("200.00")))
	assert.Equal(t, 1, s.ByState[finance.StateVencido].Count)
	assert.True(t, s.ByState[finance.StateVencido].TotalPending.Equal(dec("700.00")))
	assert.Equal(t, 1, s.ByState[finance.StatePagado].Count)
	assert.True(t, s.ByState[finance.StatePagado].TotalPending.IsZero())
	assert.Equal(t, 0, s.Skipped)
}

// Una cuenta con sobrepago inconsistente no aborta el reporte: se cuenta aparte.
func TestSummarizeAccounts_HistorialInconsistenteNoAborta(t *testing.T) {
	manana := ref.AddDate(0, 0, 1)
	accounts := []report.AccountWithPayments{
		cuenta("100.00", manana, "150.00"), // sobrepago: no derivable
		cuenta("100.00", manana),
	}

	s := report.SummarizeAccounts(accounts, ref)

	assert.Equal(t, 1, s.TotalCount)
	assert.Equal(t, 1, s.Skipped)
	assert.True(t, s.TotalPending.Equal(dec("100.00")))
}
