package reportes

import (
	"context"
	"time"

	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
	"github.com/jvargas/Finanzas-api/internal/domain/report"
)

// ExpiryRow fila del reporte de vencimientos: lote más su clasificación.
type ExpiryRow struct {
	Lot    entity.Lot
	Result expiry.Result
}

// AgingRow fila del reporte de antigüedad de saldos: cuenta más su balance.
type AgingRow struct {
	Account entity.OpenAccount
	Balance finance.Balance
}

// ReportPDFGenerator puerto de generación de PDFs de reportes.
type ReportPDFGenerator interface {
	GenerateExpiryReport(ctx context.Context, rows []ExpiryRow, summary report.LotSummary, referenceDate time.Time) ([]byte, error)
	GenerateAgingReport(ctx context.Context, kind string, rows []AgingRow, summary report.AccountSummary, referenceDate time.Time) ([]byte, error)
}

// JournalBookExporter puerto de exportación del libro diario (XML).
type JournalBookExporter interface {
	BuildJournalBook(entries []entity.JournalEntry, from, to time.Time) ([]byte, error)
}
