// Package money centraliza la aritmética monetaria del núcleo financiero.
// Todos los montos son decimal.Decimal (punto fijo, sin float binario) para
// evitar deriva de redondeo en sumas y restas repetidas.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jvargas/Finanzas-api/internal/domain"
)

// Tolerance es la unidad monetaria mínima (un centavo). Dos montos se
// consideran iguales solo si difieren en MENOS de un centavo: una diferencia
// de exactamente 0.01 NO está dentro de la tolerancia.
var Tolerance = decimal.New(1, -2) // 0.01

// Parse convierte un string decimal a monto. Rechaza entradas malformadas
// con domain.ErrInvalidAmount; el tipo decimal excluye NaN/Inf por construcción.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: vacío", domain.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseNonNegative como Parse pero además rechaza montos negativos.
func ParseNonNegative(s string) (decimal.Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q es negativo", domain.ErrInvalidAmount, s)
	}
	return d, nil
}

// WithinTolerance indica si a y b difieren en menos de un centavo.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Tolerance)
}

// IsZeroWithinTolerance indica si un monto es cero a efectos contables.
func IsZeroWithinTolerance(a decimal.Decimal) bool {
	return a.Abs().LessThan(Tolerance)
}

// Sum suma una lista de montos.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MulQty calcula cantidad × precio unitario. Rechaza cantidad negativa.
func MulQty(qty, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if qty.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: cantidad negativa", domain.ErrInvalidAmount)
	}
	return qty.Mul(unitPrice), nil
}
