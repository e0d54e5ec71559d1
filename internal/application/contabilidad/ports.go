package contabilidad

import (
	"context"

	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// TxRunner frontera transaccional del libro diario. La validación del asiento
// y su INSERT ocurren dentro de la misma transacción: un crash entre ambos no
// puede dejar un asiento desbalanceado a medio escribir.
type TxRunner interface {
	RunJournal(ctx context.Context, fn func(journalRepo repository.JournalRepository) error) error
}
