package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entry(lines ...entity.JournalLine) *entity.JournalEntry {
	return &entity.JournalEntry{
		Number:  1,
		Date:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Concept: "compra de mercadería",
		Lines:   lines,
	}
}

func debe(account, monto string) entity.JournalLine {
	return entity.JournalLine{AccountCode: account, Debit: dec(monto), Credit: decimal.Zero}
}

func haber(account, monto string) entity.JournalLine {
	return entity.JournalLine{AccountCode: account, Debit: decimal.Zero, Credit: dec(monto)}
}

func TestValidate_AsientoBalanceado(t *testing.T) {
	e := entry(
		debe("1.1.01", "100.00"),
		haber("2.1.01", "100.00"),
	)
	assert.NoError(t, ledger.Validate(e))
}

func TestValidate_BalanceadoConVariasLineas(t *testing.T) {
	e := entry(
		debe("1.1.01", "700.00"),
		debe("1.3.02", "300.00"),
		haber("2.1.01", "850.00"),
		haber("2.1.05", "150.00"),
	)
	assert.NoError(t, ledger.Validate(e))
}

// Diferencia de exactamente un centavo: fuera de tolerancia, debe fallar.
func TestValidate_DesbalancePorUnCentavo(t *testing.T) {
	e := entry(
		debe("1.1.01", "100.00"),
		haber("2.1.01", "99.99"),
	)

	err := ledger.Validate(e)
	var ubErr *ledger.UnbalancedEntryError
	require.ErrorAs(t, err, &ubErr)
	assert.True(t, ubErr.Difference.Equal(dec("0.01")), "diferencia = %s", ubErr.Difference)
	assert.True(t, ubErr.TotalDebe.Equal(dec("100.00")))
	assert.True(t, ubErr.TotalHaber.Equal(dec("99.99")))
}

func TestValidate_DesbalanceMayor(t *testing.T) {
	e := entry(
		debe("1.1.01", "500.00"),
		haber("2.1.01", "200.00"),
	)

	var ubErr *ledger.UnbalancedEntryError
	require.ErrorAs(t, ledger.Validate(e), &ubErr)
	assert.True(t, ubErr.Difference.Equal(dec("300.00")))
}

func TestValidate_LineaConAmbosLados(t *testing.T) {
	e := entry(
		entity.JournalLine{AccountCode: "1.1.01", Debit: dec("50"), Credit: dec("50")},
		haber("2.1.01", "0.00"),
	)

	var lineErr *ledger.InvalidLineError
	require.ErrorAs(t, ledger.Validate(e), &lineErr)
	assert.Equal(t, 0, lineErr.Line)
	assert.Equal(t, ledger.ReasonBothSides, lineErr.Reason)
}

func TestValidate_LineaSinLados(t *testing.T) {
	e := entry(
		debe("1.1.01", "100.00"),
		entity.JournalLine{AccountCode: "2.1.01"},
	)

	var lineErr *ledger.InvalidLineError
	require.ErrorAs(t, ledger.Validate(e), &lineErr)
	assert.Equal(t, 1, lineErr.Line)
	assert.Equal(t, ledger.ReasonNoSide, lineErr.Reason)
}

func TestValidate_MontosNegativos(t *testing.T) {
	e := entry(
		entity.JournalLine{AccountCode: "1.1.01", Debit: dec("-10")},
		haber("2.1.01", "10.00"),
	)

	var lineErr *ledger.InvalidLineError
	require.ErrorAs(t, ledger.Validate(e), &lineErr)
	assert.Equal(t, ledger.ReasonNegativeDebe, lineErr.Reason)
}

func TestValidate_CuentaVacia(t *testing.T) {
	e := entry(
		debe("", "10.00"),
		haber("2.1.01", "10.00"),
	)

	var lineErr *ledger.InvalidLineError
	require.ErrorAs(t, ledger.Validate(e), &lineErr)
	assert.Equal(t, ledger.ReasonEmptyAccount, lineErr.Reason)
}

func TestValidate_AsientoVacio(t *testing.T) {
	var lineErr *ledger.InvalidLineError
	require.ErrorAs(t, ledger.Validate(entry()), &lineErr)
}

// Perturbar el debe de una línea balanceada siempre invalida el asiento.
func TestValidate_PerturbacionRompeBalance(t *testing.T) {
	base := entry(
		debe("1.1.01", "100.00"),
		haber("2.1.01", "100.00"),
	)
	require.NoError(t, ledger.Validate(base))

	perturbed := entry(
		debe("1.1.01", "100.02"),
		haber("2.1.01", "100.00"),
	)
	var ubErr *ledger.UnbalancedEntryError
	assert.ErrorAs(t, ledger.Validate(perturbed), &ubErr)
}
