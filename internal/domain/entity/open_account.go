package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cuenta abierta.
const (
	AccountKindPayable    = "PAYABLE"    // cuenta por pagar (compras)
	AccountKindReceivable = "RECEIVABLE" // cuenta por cobrar (ventas)
)

// OpenAccount representa una cuenta por pagar o por cobrar ligada a un documento
// de compra o venta. El saldo pendiente y el estado se derivan de los pagos, nunca
// se almacenan como verdad primaria.
type OpenAccount struct {
	ID             string
	Kind           string // AccountKindPayable | AccountKindReceivable
	DocumentRef    string // ID del documento de compra/venta de origen
	DocumentNumber string // número visible del documento (factura, recibo)
	ThirdPartyID   string // proveedor o cliente
	ThirdPartyName string
	OriginalAmount decimal.Decimal
	DueDate        time.Time
	CreatedAt      time.Time
	CreatedBy      string
}

// Payment es un abono registrado contra una OpenAccount. Propiedad exclusiva de
// su cuenta y append-only: una vez registrado no se modifica ni se elimina,
// siguiendo la práctica contable real.
type Payment struct {
	ID            string
	AccountID     string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentTypeID string // efectivo, transferencia, cheque...
	Note          string
	CreatedAt     time.Time
	CreatedBy     string
}
