package contabilidad

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/ledger"
	"github.com/jvargas/Finanzas-api/internal/domain/money"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// JournalUseCase creación y consulta de asientos contables. Todo asiento pasa
// por ledger.Validate antes del INSERT; no existe otro camino de escritura.
type JournalUseCase struct {
	txRunner    TxRunner
	journalRepo repository.JournalRepository
	now         func() time.Time
}

// NewJournalUseCase construye el caso de uso. journalRepo (sobre el pool) se
// usa para lecturas; las escrituras van por txRunner.
func NewJournalUseCase(txRunner TxRunner, journalRepo repository.JournalRepository) *JournalUseCase {
	return &JournalUseCase{txRunner: txRunner, journalRepo: journalRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *JournalUseCase) WithClock(now func() time.Time) *JournalUseCase {
	uc.now = now
	return uc
}

// CreateEntry construye el asiento desde el request, lo valida y lo persiste
// con numeración consecutiva, todo en una transacción.
func (uc *JournalUseCase) CreateEntry(ctx context.Context, userID string, in dto.CreateJournalEntryRequest) (*dto.JournalEntryResponse, error) {
	entry, err := uc.buildEntry(userID, in)
	if err != nil {
		return nil, err
	}
	if err := ledger.Validate(entry); err != nil {
		return nil, err
	}

	err = uc.txRunner.RunJournal(ctx, func(journalRepo repository.JournalRepository) error {
		number, err := journalRepo.NextNumber()
		if err != nil {
			return err
		}
		entry.Number = number
		// Revalidar dentro de la tx: el asiento que entra al libro es
		// exactamente el que pasó la puerta.
		if err := ledger.Validate(entry); err != nil {
			return err
		}
		return journalRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(entry)
	return &resp, nil
}

// ValidateEntry valida un asiento candidato sin persistirlo (dry-run para que
// la capa de presentación muestre el error antes de confirmar).
func (uc *JournalUseCase) ValidateEntry(in dto.CreateJournalEntryRequest) dto.ValidationResponse {
	entry, err := uc.buildEntry("", in)
	if err == nil {
		err = ledger.Validate(entry)
	}
	if err == nil {
		return dto.ValidationResponse{OK: true}
	}

	var ubErr *ledger.UnbalancedEntryError
	if errors.As(err, &ubErr) {
		return dto.ValidationResponse{
			OK:    false,
			Error: "UNBALANCED_ENTRY",
			Detail: dto.UnbalancedDetail{
				TotalDebe:  ubErr.TotalDebe.StringFixed(2),
				TotalHaber: ubErr.TotalHaber.StringFixed(2),
				Difference: ubErr.Difference.StringFixed(2),
			},
		}
	}
	var lineErr *ledger.InvalidLineError
	if errors.As(err, &lineErr) {
		return dto.ValidationResponse{
			OK:     false,
			Error:  "INVALID_LINE",
			Detail: dto.InvalidLineDetail{Line: lineErr.Line, Reason: lineErr.Reason},
		}
	}
	return dto.ValidationResponse{OK: false, Error: "INVALID_INPUT", Detail: err.Error()}
}

// GetEntry devuelve un asiento con sus líneas.
func (uc *JournalUseCase) GetEntry(id string) (*dto.JournalEntryResponse, error) {
	entry, err := uc.journalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEntryResponse(entry)
	return &resp, nil
}

// ListEntries lista asientos de un rango de fechas.
func (uc *JournalUseCase) ListEntries(from, to time.Time, page dto.PageRequest) (*dto.JournalListResponse, error) {
	page.DefaultPage()
	entries, err := uc.journalRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.JournalListResponse{
		Entries: make([]dto.JournalEntryResponse, 0, len(entries)),
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for i := range entries {
		out.Entries = append(out.Entries, toEntryResponse(&entries[i]))
	}
	return out, nil
}

func (uc *JournalUseCase) buildEntry(userID string, in dto.CreateJournalEntryRequest) (*entity.JournalEntry, error) {
	if in.Concept == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidDate, in.Date)
	}
	entry := &entity.JournalEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Concept:   in.Concept,
		SourceRef: in.SourceRef,
		CreatedAt: uc.now(),
		CreatedBy: userID,
	}
	for i, l := range in.Lines {
		debe, err := money.ParseNonNegative(l.Debe)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", i, err)
		}
		haber, err := money.ParseNonNegative(l.Haber)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", i, err)
		}
		entry.Lines = append(entry.Lines, entity.JournalLine{
			AccountCode: l.AccountCode,
			Description: l.Description,
			Debit:       debe,
			Credit:      haber,
			Position:    i,
		})
	}
	return entry, nil
}

func toEntryResponse(e *entity.JournalEntry) dto.JournalEntryResponse {
	resp := dto.JournalEntryResponse{
		ID:         e.ID,
		Number:     e.Number,
		Date:       e.Date.Format(dto.DateLayout),
		Concept:    e.Concept,
		SourceRef:  e.SourceRef,
		TotalDebe:  e.TotalDebit().StringFixed(2),
		TotalHaber: e.TotalCredit().StringFixed(2),
	}
	for _, l := range e.Lines {
		resp.Lines = append(resp.Lines, dto.JournalLineResponse{
			AccountCode: l.AccountCode,
			Description: l.Description,
			Debe:        l.Debit.StringFixed(2),
			Haber:       l.Credit.StringFixed(2),
			Position:    l.Position,
		})
	}
	return resp
}
