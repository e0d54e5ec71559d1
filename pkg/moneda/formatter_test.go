package moneda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jvargas/Finanzas-api/pkg/moneda"
)

// El formateo es solo presentación: verificamos símbolo, dos decimales y que
// un locale inválido cae al default sin panic. No fijamos el separador exacto
// de miles (depende de los datos CLDR de x/text).
func TestFormat_IncluyeSimboloYDosDecimales(t *testing.T) {
	f := moneda.New("Bs", "es-BO")

	out := f.Format(decimal.RequireFromString("1234.5"))
	assert.Contains(t, out, "Bs", "el símbolo debe incluirse")
	assert.Contains(t, out, "50", "debe completar a dos decimales")
}

func TestFormat_LocaleInvalidoUsaDefault(t *testing.T) {
	f := moneda.New("Bs", "no-es-un-locale!!")

	out := f.Format(decimal.RequireFromString("10"))
	assert.Contains(t, out, "Bs")
	assert.Contains(t, out, "00")
}

func TestFormatPlain_SinSimbolo(t *testing.T) {
	f := moneda.New("Bs", "es-BO")

	out := f.FormatPlain(decimal.RequireFromString("99.90"))
	assert.NotContains(t, out, "Bs")
	assert.Contains(t, out, "90")
}
