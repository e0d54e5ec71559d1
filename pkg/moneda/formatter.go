package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea montos decimales para presentación según locale
// (ej. "Bs 1.234,56" en es-BO). Solo para display: los cálculos siempre
// se hacen sobre decimal.Decimal, nunca sobre el string formateado.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// New construye el formateador. Si el locale no es parseable se usa es-BO.
func New(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("es-BO")
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format devuelve el monto con símbolo, separador de miles y dos decimales.
func (f *Formatter) Format(amount decimal.Decimal) string {
	// InexactFloat64 es suficiente aquí: el redondeo a 2 decimales ya ocurrió en el dominio.
	v := amount.Round(2).InexactFloat64()
	return f.printer.Sprintf("%s %v", f.symbol, number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPlain devuelve el monto sin símbolo (para celdas de tablas PDF).
func (f *Formatter) FormatPlain(amount decimal.Decimal) string {
	v := amount.Round(2).InexactFloat64()
	return f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
