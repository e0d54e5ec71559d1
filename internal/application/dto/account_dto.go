package dto

// CreateAccountRequest alta de una cuenta por pagar o cobrar desde un documento
// de compra/venta.
type CreateAccountRequest struct {
	Kind           string `json:"kind"` // PAYABLE | RECEIVABLE
	DocumentRef    string `json:"document_ref"`
	DocumentNumber string `json:"document_number"`
	ThirdPartyID   string `json:"third_party_id"`
	ThirdPartyName string `json:"third_party_name"`
	OriginalAmount string `json:"original_amount"` // decimal-string
	DueDate        string `json:"due_date"`        // 2006-01-02
}

// RegisterPaymentRequest abono contra una cuenta abierta.
// AllowOverpayment solo surte efecto si la política global lo permite
// (FIN_ALLOW_OVERPAYMENT); nunca es un default silencioso.
type RegisterPaymentRequest struct {
	Amount           string `json:"amount"` // decimal-string, > 0
	Date             string `json:"date"`   // 2006-01-02
	PaymentTypeID    string `json:"payment_type_id"`
	Note             string `json:"note,omitempty"`
	AllowOverpayment bool   `json:"allow_overpayment,omitempty"`
}

// PaymentResponse pago registrado.
type PaymentResponse struct {
	ID            string `json:"id"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	PaymentTypeID string `json:"payment_type_id"`
	Note          string `json:"note,omitempty"`
}

// AccountResponse cuenta con su balance derivado a la fecha de referencia.
type AccountResponse struct {
	ID             string            `json:"id"`
	Kind           string            `json:"kind"`
	DocumentRef    string            `json:"document_ref"`
	DocumentNumber string            `json:"document_number"`
	ThirdPartyID   string            `json:"third_party_id"`
	ThirdPartyName string            `json:"third_party_name"`
	OriginalAmount string            `json:"original_amount"`
	DueDate        string            `json:"due_date"`
	SaldoPendiente string            `json:"saldo_pendiente"`
	Estado         string            `json:"estado"` // PENDIENTE | PARCIAL | VENCIDO | PAGADO
	DiasVencido    int               `json:"dias_vencido"`
	Payments       []PaymentResponse `json:"payments,omitempty"`
}

// AccountListResponse listado paginado de cuentas con balance.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Page     PageResponse      `json:"page"`
}
