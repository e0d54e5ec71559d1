// Package expiry clasifica lotes de inventario por urgencia de vencimiento.
// Función pura: la fecha de referencia siempre es explícita (nunca se lee el
// reloj de pared aquí) para que la clasificación sea determinista en tests.
package expiry

import "time"

// State estado de vencimiento de un lote. Partición estricta: todo par
// (fecha de vencimiento, referencia) cae en exactamente un estado.
type State string

const (
	StateVigente       State = "VIGENTE"        // sin vencimiento o lejos en el futuro
	StateProximoVencer State = "PROXIMO_VENCER" // dentro de la ventana de aviso
	StateCritico       State = "CRITICO"        // dentro de la ventana crítica
	StateVencido       State = "VENCIDO"        // la fecha ya pasó
)

// Thresholds ventanas de clasificación en días.
type Thresholds struct {
	CriticalDays int
	WarningDays  int
}

// DefaultThresholds valores estándar: crítico a 7 días, aviso a 30.
func DefaultThresholds() Thresholds {
	return Thresholds{CriticalDays: 7, WarningDays: 30}
}

// Result clasificación de un lote. DaysRemaining es nil cuando el producto no
// tiene fecha de vencimiento; negativo significa días ya vencidos.
type Result struct {
	State         State
	DaysRemaining *int
}

// Classify determina el estado de vencimiento respecto a referenceDate.
// Los días se cuentan sobre fechas calendario (ambas truncadas a medianoche):
// un lote que vence hoy tiene 0 días restantes y es CRITICO, no VENCIDO.
func Classify(expiryDate *time.Time, referenceDate time.Time, th Thresholds) Result {
	if expiryDate == nil {
		return Result{State: StateVigente}
	}

	days := daysBetween(referenceDate, *expiryDate)
	r := Result{DaysRemaining: &days}

	switch {
	case days < 0:
		r.State = StateVencido
	case days <= th.CriticalDays:
		r.State = StateCritico
	case days <= th.WarningDays:
		r.State = StateProximoVencer
	default:
		r.State = StateVigente
	}
	return r
}

// daysBetween días calendario completos desde from hasta to (negativo si to es anterior).
func daysBetween(from, to time.Time) int {
	f := truncateToDay(from)
	t := truncateToDay(to)
	return int(t.Sub(f).Hours() / 24)
}

// truncateToDay normaliza a medianoche UTC para que la resta de fechas sea
// un múltiplo exacto de 24h, independiente de hora y zona del timestamp.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
