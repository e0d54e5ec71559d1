package dto

// JournalLineRequest línea de asiento propuesta. Montos como decimal-string;
// exactamente uno de debe/haber debe ser distinto de cero.
type JournalLineRequest struct {
	AccountCode string `json:"codigo_cuenta"`
	Description string `json:"description,omitempty"`
	Debe        string `json:"debe"`
	Haber       string `json:"haber"`
}

// CreateJournalEntryRequest asiento contable candidato. Se valida (partida
// doble, balance debe==haber) antes de persistir; un rechazo no escribe nada.
type CreateJournalEntryRequest struct {
	Date      string               `json:"fecha"` // 2006-01-02
	Concept   string               `json:"concepto"`
	SourceRef string               `json:"source_ref,omitempty"`
	Lines     []JournalLineRequest `json:"lines"`
}

// JournalLineResponse línea persistida.
type JournalLineResponse struct {
	AccountCode string `json:"codigo_cuenta"`
	Description string `json:"description,omitempty"`
	Debe        string `json:"debe"`
	Haber       string `json:"haber"`
	Position    int    `json:"position"`
}

// JournalEntryResponse asiento persistido con totales.
type JournalEntryResponse struct {
	ID         string                `json:"id"`
	Number     int                   `json:"numero"`
	Date       string                `json:"fecha"`
	Concept    string                `json:"concepto"`
	SourceRef  string                `json:"source_ref,omitempty"`
	TotalDebe  string                `json:"total_debe"`
	TotalHaber string                `json:"total_haber"`
	Lines      []JournalLineResponse `json:"lines"`
}

// ValidationResponse resultado de validar un asiento sin persistirlo.
type ValidationResponse struct {
	OK     bool        `json:"ok"`
	Error  string      `json:"error,omitempty"`  // UNBALANCED_ENTRY | INVALID_LINE
	Detail interface{} `json:"detail,omitempty"` // totales y diferencia, o línea y motivo
}

// UnbalancedDetail detalle de un asiento desbalanceado.
type UnbalancedDetail struct {
	TotalDebe  string `json:"total_debe"`
	TotalHaber string `json:"total_haber"`
	Difference string `json:"difference"`
}

// InvalidLineDetail detalle de una línea inválida.
type InvalidLineDetail struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// JournalListResponse listado de asientos de un rango de fechas.
type JournalListResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
	Page    PageResponse           `json:"page"`
}
