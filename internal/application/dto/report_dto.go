package dto

// LotBucketDTO acumulado de un estado de vencimiento.
type LotBucketDTO struct {
	Count int    `json:"count"`
	Value string `json:"value"`
}

// LotSummaryResponse resumen de lotes por estado de vencimiento.
type LotSummaryResponse struct {
	ReferenceDate string                  `json:"reference_date"`
	ByState       map[string]LotBucketDTO `json:"by_state"`
	TotalCount    int                     `json:"total_count"`
	TotalValue    string                  `json:"total_value"`
	ExpiredValue  string                  `json:"expired_value"`
}

// AccountBucketDTO acumulado de un estado de cuenta.
type AccountBucketDTO struct {
	Count        int    `json:"count"`
	TotalAmount  string `json:"total_amount"`
	TotalPaid    string `json:"total_paid"`
	TotalPending string `json:"total_pending"`
}

// AccountSummaryResponse resumen de cuentas por estado derivado.
type AccountSummaryResponse struct {
	Kind          string                      `json:"kind,omitempty"`
	ReferenceDate string                      `json:"reference_date"`
	ByState       map[string]AccountBucketDTO `json:"by_state"`
	TotalCount    int                         `json:"total_count"`
	TotalPending  string                      `json:"total_pending"`
	OverdueCount  int                         `json:"overdue_count"`
	Skipped       int                         `json:"skipped,omitempty"`
}
