// Package ledger valida asientos contables de partida doble antes de su
// persistencia. El validador nunca corrige ni auto-balancea: un asiento
// inválido se rechaza con un error tipado que describe la causa.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/money"
)

// UnbalancedEntryError el total del debe no coincide con el total del haber.
type UnbalancedEntryError struct {
	TotalDebe  decimal.Decimal
	TotalHaber decimal.Decimal
	Difference decimal.Decimal // TotalDebe - TotalHaber
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("asiento desbalanceado: debe %s, haber %s, diferencia %s",
		e.TotalDebe.StringFixed(2), e.TotalHaber.StringFixed(2), e.Difference.StringFixed(2))
}

// Motivos de línea inválida.
const (
	ReasonEmptyAccount  = "cuenta vacía"
	ReasonNegativeDebe  = "debe negativo"
	ReasonNegativeHaber = "haber negativo"
	ReasonBothSides     = "debe y haber ambos distintos de cero"
	ReasonNoSide        = "debe y haber ambos en cero"
)

// InvalidLineError una línea viola la disciplina de partida doble.
type InvalidLineError struct {
	Line   int // índice de la línea (base cero)
	Reason string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("línea %d inválida: %s", e.Line, e.Reason)
}

// Validate verifica un asiento candidato:
//
//  1. Cada línea tiene cuenta, montos no negativos y exactamente uno de
//     debe/haber distinto de cero (InvalidLineError en caso contrario).
//  2. sum(debe) y sum(haber) difieren en menos de un centavo
//     (UnbalancedEntryError en caso contrario; una diferencia de exactamente
//     0.01 falla).
//
// Un asiento sin líneas es inválido: no representa ningún hecho contable.
func Validate(entry *entity.JournalEntry) error {
	if len(entry.Lines) == 0 {
		return &InvalidLineError{Line: 0, Reason: "asiento sin líneas"}
	}

	for i, line := range entry.Lines {
		if err := validateLine(i, line); err != nil {
			return err
		}
	}

	totalDebe := entry.TotalDebit()
	totalHaber := entry.TotalCredit()
	if !money.WithinTolerance(totalDebe, totalHaber) {
		return &UnbalancedEntryError{
			TotalDebe:  totalDebe,
			TotalHaber: totalHaber,
			Difference: totalDebe.Sub(totalHaber),
		}
	}
	return nil
}

func validateLine(i int, line entity.JournalLine) error {
	if line.AccountCode == "" {
		return &InvalidLineError{Line: i, Reason: ReasonEmptyAccount}
	}
	if line.Debit.IsNegative() {
		return &InvalidLineError{Line: i, Reason: ReasonNegativeDebe}
	}
	if line.Credit.IsNegative() {
		return &InvalidLineError{Line: i, Reason: ReasonNegativeHaber}
	}
	debeSet := !line.Debit.IsZero()
	haberSet := !line.Credit.IsZero()
	if debeSet && haberSet {
		return &InvalidLineError{Line: i, Reason: ReasonBothSides}
	}
	if !debeSet && !haberSet {
		return &InvalidLineError{Line: i, Reason: ReasonNoSide}
	}
	return nil
}
