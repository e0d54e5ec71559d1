package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un lote físico de un producto recibido en una línea de compra.
// Inmutable una vez creado salvo el consumo de cantidad por ventas (fuera de este núcleo).
// Invariante: Quantity >= 0. ExpiryDate nil = producto sin vencimiento.
type Lot struct {
	ID             string
	Code           string // código de lote impreso en el empaque
	ProductID      string
	ProductName    string // desnormalizado para listados y reportes
	PurchaseLineID string
	WarehouseID    string
	Quantity       decimal.Decimal
	UnitCost       decimal.Decimal
	ExpiryDate     *time.Time
	CreatedAt      time.Time
	CreatedBy      string
}

// Value devuelve el valor de inventario del lote (cantidad × costo unitario).
func (l *Lot) Value() decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost)
}
