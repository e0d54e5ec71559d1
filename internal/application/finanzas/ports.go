package finanzas

import (
	"context"

	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera de atomicidad del registro de
// pagos: el bloqueo de fila (SELECT FOR UPDATE) solo serializa dentro de una
// transacción abierta.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accountRepo repository.OpenAccountRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
