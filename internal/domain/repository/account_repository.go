package repository

import (
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/report"
)

// OpenAccountRepository puerto de persistencia para cuentas por pagar/cobrar.
type OpenAccountRepository interface {
	Create(acc *entity.OpenAccount) error
	GetByID(id string) (*entity.OpenAccount, error)
	// GetForUpdate bloquea la fila de la cuenta (SELECT FOR UPDATE) para
	// serializar registros de pago concurrentes contra el mismo saldo.
	GetForUpdate(id string) (*entity.OpenAccount, error)
	// List filtra por tipo (PAYABLE/RECEIVABLE); kind vacío lista todas.
	List(kind string, limit, offset int) ([]entity.OpenAccount, error)
	// ListWithPayments devuelve el snapshot cuenta+pagos para los reportes.
	ListWithPayments(kind string) ([]report.AccountWithPayments, error)
}

// PaymentRepository puerto para el historial de pagos. Append-only: los pagos
// registrados no se modifican ni eliminan.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	// ListByAccount devuelve los pagos en orden de inserción (el más antiguo primero).
	ListByAccount(accountID string) ([]entity.Payment, error)
}
