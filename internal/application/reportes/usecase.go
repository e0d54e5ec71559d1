package reportes

import (
	"context"
	"time"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
	"github.com/jvargas/Finanzas-api/internal/domain/report"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// ReportsUseCase arma los resúmenes gerenciales y los documentos exportables
// (PDF, XML) a partir del snapshot actual de lotes, cuentas y asientos.
// Sin estado propio: cada reporte se recalcula bajo demanda.
type ReportsUseCase struct {
	lotRepo     repository.LotRepository
	accountRepo repository.OpenAccountRepository
	journalRepo repository.JournalRepository
	pdf         ReportPDFGenerator
	exporter    JournalBookExporter
	thresholds  expiry.Thresholds
	now         func() time.Time
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	lotRepo repository.LotRepository,
	accountRepo repository.OpenAccountRepository,
	journalRepo repository.JournalRepository,
	pdf ReportPDFGenerator,
	exporter JournalBookExporter,
	th expiry.Thresholds,
) *ReportsUseCase {
	return &ReportsUseCase{
		lotRepo:     lotRepo,
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		pdf:         pdf,
		exporter:    exporter,
		thresholds:  th,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportsUseCase) WithClock(now func() time.Time) *ReportsUseCase {
	uc.now = now
	return uc
}

// LotSummary resumen de lotes por estado de vencimiento a referenceDate (nil = ahora).
func (uc *ReportsUseCase) LotSummary(referenceDate *time.Time) (*dto.LotSummaryResponse, error) {
	lots, err := uc.lotRepo.ListAll()
	if err != nil {
		return nil, err
	}
	ref := uc.resolveRef(referenceDate)
	s := report.SummarizeLots(lots, ref, uc.thresholds)

	resp := &dto.LotSummaryResponse{
		ReferenceDate: ref.Format(dto.DateLayout),
		ByState:       make(map[string]dto.LotBucketDTO, len(s.ByState)),
		TotalCount:    s.TotalCount,
		TotalValue:    s.TotalValue.StringFixed(2),
		ExpiredValue:  s.ExpiredValue().StringFixed(2),
	}
	for state, b := range s.ByState {
		resp.ByState[string(state)] = dto.LotBucketDTO{
			Count: b.Count,
			Value: b.Value.StringFixed(2),
		}
	}
	return resp, nil
}

// AccountSummary resumen de cuentas por estado derivado, filtrado por tipo.
func (uc *ReportsUseCase) AccountSummary(kind string, referenceDate *time.Time) (*dto.AccountSummaryResponse, error) {
	accounts, err := uc.accountRepo.ListWithPayments(kind)
	if err != nil {
		return nil, err
	}
	ref := uc.resolveRef(referenceDate)
	s := report.SummarizeAccounts(accounts, ref)

	resp := &dto.AccountSummaryResponse{
		Kind:          kind,
		ReferenceDate: ref.Format(dto.DateLayout),
		ByState:       make(map[string]dto.AccountBucketDTO, len(s.ByState)),
		TotalCount:    s.TotalCount,
		TotalPending:  s.TotalPending.StringFixed(2),
		OverdueCount:  s.OverdueCount,
		Skipped:       s.Skipped,
	}
	for state, b := range s.ByState {
		resp.ByState[state] = dto.AccountBucketDTO{
			Count:        b.Count,
			TotalAmount:  b.TotalAmount.StringFixed(2),
			TotalPaid:    b.TotalPaid.StringFixed(2),
			TotalPending: b.TotalPending.StringFixed(2),
		}
	}
	return resp, nil
}

// ExpiryReportPDF genera el PDF del reporte de vencimientos de lotes.
func (uc *ReportsUseCase) ExpiryReportPDF(ctx context.Context, referenceDate *time.Time) ([]byte, error) {
	lots, err := uc.lotRepo.ListAll()
	if err != nil {
		return nil, err
	}
	ref := uc.resolveRef(referenceDate)
	rows := make([]ExpiryRow, 0, len(lots))
	for _, lot := range lots {
		rows = append(rows, ExpiryRow{
			Lot:    lot,
			Result: expiry.Classify(lot.ExpiryDate, ref, uc.thresholds),
		})
	}
	summary := report.SummarizeLots(lots, ref, uc.thresholds)
	return uc.pdf.GenerateExpiryReport(ctx, rows, summary, ref)
}

// AgingReportPDF genera el PDF de antigüedad de saldos por tipo de cuenta.
func (uc *ReportsUseCase) AgingReportPDF(ctx context.Context, kind string, referenceDate *time.Time) ([]byte, error) {
	accounts, err := uc.accountRepo.ListWithPayments(kind)
	if err != nil {
		return nil, err
	}
	ref := uc.resolveRef(referenceDate)
	rows := make([]AgingRow, 0, len(accounts))
	for _, ap := range accounts {
		bal, err := finance.ComputeBalance(ap.Account.OriginalAmount, ap.Payments, ap.Account.DueDate, ref)
		if err != nil {
			continue // historial inconsistente: se omite la fila, igual que en el resumen
		}
		rows = append(rows, AgingRow{Account: ap.Account, Balance: bal})
	}
	summary := report.SummarizeAccounts(accounts, ref)
	return uc.pdf.GenerateAgingReport(ctx, kind, rows, summary, ref)
}

// JournalBookXML exporta el libro diario del rango [from, to] como XML.
func (uc *ReportsUseCase) JournalBookXML(from, to time.Time) ([]byte, error) {
	// Sin paginación: el libro se exporta completo para el período.
	entries, err := uc.journalRepo.List(from, to, 100000, 0)
	if err != nil {
		return nil, err
	}
	return uc.exporter.BuildJournalBook(entries, from, to)
}

func (uc *ReportsUseCase) resolveRef(referenceDate *time.Time) time.Time {
	if referenceDate != nil {
		return *referenceDate
	}
	return uc.now()
}
