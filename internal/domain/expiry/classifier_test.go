package expiry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
)

var refDate = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestClassify_SinVencimientoEsVigente(t *testing.T) {
	r := expiry.Classify(nil, refDate, expiry.DefaultThresholds())

	assert.Equal(t, expiry.StateVigente, r.State)
	assert.Nil(t, r.DaysRemaining, "sin fecha no hay días restantes")
}

// Tabla sobre los umbrales por defecto (crítico=7, aviso=30).
func TestClassify_ParticionPorDias(t *testing.T) {
	cases := []struct {
		name     string
		daysOut  int
		want     expiry.State
	}{
		{"vencido hace un mes", -30, expiry.StateVencido},
		{"vencido ayer", -1, expiry.StateVencido},
		{"vence hoy es critico, no vencido", 0, expiry.StateCritico},
		{"dentro de ventana critica", 5, expiry.StateCritico},
		{"borde critico", 7, expiry.StateCritico},
		{"justo fuera de critico", 8, expiry.StateProximoVencer},
		{"borde de aviso", 30, expiry.StateProximoVencer},
		{"justo fuera de aviso", 31, expiry.StateVigente},
		{"lejos en el futuro", 365, expiry.StateVigente},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			exp := refDate.AddDate(0, 0, c.daysOut)
			r := expiry.Classify(&exp, refDate, expiry.DefaultThresholds())

			assert.Equal(t, c.want, r.State)
			require.NotNil(t, r.DaysRemaining)
			assert.Equal(t, c.daysOut, *r.DaysRemaining)
		})
	}
}

// La hora del día no debe afectar el conteo: solo cuentan fechas calendario.
func TestClassify_IgnoraHoraDelDia(t *testing.T) {
	exp := time.Date(2025, 6, 20, 23, 59, 0, 0, time.UTC) // 5 días después
	ref := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	r := expiry.Classify(&exp, ref, expiry.DefaultThresholds())

	require.NotNil(t, r.DaysRemaining)
	assert.Equal(t, 5, *r.DaysRemaining)
	assert.Equal(t, expiry.StateCritico, r.State)
}

// Monotonía: al reducir los días restantes el estado nunca se vuelve menos urgente.
func TestClassify_MonotoniaDeUrgencia(t *testing.T) {
	urgency := map[expiry.State]int{
		expiry.StateVigente:       0,
		expiry.StateProximoVencer: 1,
		expiry.StateCritico:       2,
		expiry.StateVencido:       3,
	}

	prev := -1
	for days := 60; days >= -10; days-- {
		exp := refDate.AddDate(0, 0, days)
		r := expiry.Classify(&exp, refDate, expiry.DefaultThresholds())
		u := urgency[r.State]
		assert.GreaterOrEqual(t, u, prev,
			"con %d días el estado %s retrocedió en urgencia", days, r.State)
		prev = u
	}
}

func TestClassify_UmbralesPersonalizados(t *testing.T) {
	th := expiry.Thresholds{CriticalDays: 2, WarningDays: 10}

	exp := refDate.AddDate(0, 0, 5)
	r := expiry.Classify(&exp, refDate, th)
	assert.Equal(t, expiry.StateProximoVencer, r.State)

	exp2 := refDate.AddDate(0, 0, 2)
	r2 := expiry.Classify(&exp2, refDate, th)
	assert.Equal(t, expiry.StateCritico, r2.State)
}
