package dto

// RegisterLotRequest alta de un lote recibido en una línea de compra.
// Montos como decimal-string y fechas en formato 2006-01-02.
type RegisterLotRequest struct {
	Code           string `json:"code"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	PurchaseLineID string `json:"purchase_line_id"`
	WarehouseID    string `json:"warehouse_id"`
	Quantity       string `json:"quantity"`
	UnitCost       string `json:"unit_cost"`
	ExpiryDate     string `json:"expiry_date,omitempty"` // vacío = sin vencimiento
}

// LotResponse lote con su clasificación de vencimiento derivada.
type LotResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	PurchaseLineID string `json:"purchase_line_id"`
	WarehouseID    string `json:"warehouse_id"`
	Quantity       string `json:"quantity"`
	UnitCost       string `json:"unit_cost"`
	Value          string `json:"value"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	Estado         string `json:"estado"`
	DiasRestantes  *int   `json:"dias_restantes"` // null si no tiene vencimiento
}

// LotListResponse listado paginado de lotes clasificados.
type LotListResponse struct {
	Lots []LotResponse `json:"lots"`
	Page PageResponse  `json:"page"`
}
