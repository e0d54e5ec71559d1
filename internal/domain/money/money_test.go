package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/money"
)

func TestParse_MontosValidos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1234.56", "1234.56"},
		{"-10.5", "-10.5"},
		{"0.001", "0.001"},
	}
	for _, c := range cases {
		got, err := money.Parse(c.in)
		require.NoError(t, err, "parse %q", c.in)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)), "parse %q", c.in)
	}
}

func TestParse_MontosInvalidos(t *testing.T) {
	for _, in := range []string{"", "abc", "12,34", "1.2.3", "NaN"} {
		_, err := money.Parse(in)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "entrada %q debe rechazarse", in)
	}
}

func TestParseNonNegative_RechazaNegativo(t *testing.T) {
	_, err := money.ParseNonNegative("-0.01")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	got, err := money.ParseNonNegative("0")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// La tolerancia es exclusiva: un centavo exacto de diferencia NO es igualdad.
func TestWithinTolerance_BordeDeUnCentavo(t *testing.T) {
	a := decimal.RequireFromString("100.00")

	assert.True(t, money.WithinTolerance(a, decimal.RequireFromString("100.005")))
	assert.False(t, money.WithinTolerance(a, decimal.RequireFromString("99.99")),
		"diferencia de exactamente 0.01 está fuera de tolerancia")
	assert.False(t, money.WithinTolerance(a, decimal.RequireFromString("100.02")))
}

func TestSum_SinDerivaDecimal(t *testing.T) {
	// 0.1 sumado diez veces debe dar exactamente 1.00 (el caso clásico que
	// falla con float64).
	parts := make([]decimal.Decimal, 10)
	for i := range parts {
		parts[i] = decimal.RequireFromString("0.1")
	}
	total := money.Sum(parts...)
	assert.True(t, total.Equal(decimal.NewFromInt(1)), "got %s", total)
}

func TestMulQty(t *testing.T) {
	got, err := money.MulQty(decimal.NewFromInt(3), decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("7.50")))

	_, err = money.MulQty(decimal.NewFromInt(-1), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
