package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry es un asiento contable: cabecera más líneas ordenadas.
// Invariante: sum(lines.Debit) == sum(lines.Credit) dentro de la tolerancia
// de la moneda. Un asiento desbalanceado nunca se persiste; el validador de
// ledger es la única puerta antes del INSERT.
type JournalEntry struct {
	ID        string
	Number    int    // consecutivo del libro diario
	Date      time.Time
	Concept   string
	SourceRef string // documento origen (compra, venta, pago)
	Lines     []JournalLine
	CreatedAt time.Time
	CreatedBy string
}

// JournalLine es una línea de asiento. Disciplina de partida doble:
// exactamente uno de Debit/Credit es distinto de cero.
type JournalLine struct {
	AccountCode string // código del plan de cuentas
	Description string
	Debit       decimal.Decimal // debe
	Credit      decimal.Decimal // haber
	Position    int             // orden dentro del asiento
}

// TotalDebit suma el debe de todas las líneas.
func (e *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit suma el haber de todas las líneas.
func (e *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}
