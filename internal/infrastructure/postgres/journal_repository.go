package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implementación de JournalRepository (usable con pool o tx).
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construye el adaptador del libro diario. Pasar pool o tx.
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

// NextNumber siguiente consecutivo del libro. MAX+1 bajo la tx de creación:
// el candado de fila del asiento previo no existe, así que se apoya en el
// UNIQUE de numero para detectar carreras (el perdedor reintenta arriba).
func (r *JournalRepo) NextNumber() (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(numero), 0) + 1 FROM journal_entries`
	if err := r.q.QueryRow(context.Background(), query).Scan(&next); err != nil {
		return 0, fmt.Errorf("next journal number: %w", err)
	}
	return next, nil
}

// Create persiste cabecera y líneas. Debe invocarse dentro de una tx.
func (r *JournalRepo) Create(entry *entity.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	headerQuery := `
		INSERT INTO journal_entries (id, numero, date, concept, source_ref, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), headerQuery,
		entry.ID, entry.Number, entry.Date, entry.Concept,
		nullIfEmpty(entry.SourceRef), entry.CreatedAt, entry.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de asiento en uso: %w", err)
		}
		return fmt.Errorf("insert journal entry: %w", err)
	}

	lineQuery := `
		INSERT INTO journal_lines (id, entry_id, account_code, description, debit, credit, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range entry.Lines {
		line := &entry.Lines[i]
		line.Position = i
		_, err := r.q.Exec(context.Background(), lineQuery,
			uuid.New().String(), entry.ID, line.AccountCode,
			nullIfEmpty(line.Description), line.Debit, line.Credit, line.Position,
		)
		if err != nil {
			return fmt.Errorf("insert journal line %d: %w", i, err)
		}
	}
	return nil
}

const entryColumns = `id, numero, date, concept, source_ref, created_at, created_by`

// GetByID obtiene un asiento con sus líneas; nil si no existe.
func (r *JournalRepo) GetByID(id string) (*entity.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE id = $1`
	entry, err := scanEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	if err := r.loadLines(map[string]*entity.JournalEntry{entry.ID: entry}); err != nil {
		return nil, err
	}
	return entry, nil
}

// List asientos del rango [from, to] con sus líneas, ordenados por número.
func (r *JournalRepo) List(from, to time.Time, limit, offset int) ([]entity.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM journal_entries
		WHERE date >= $1 AND date <= $2
		ORDER BY numero ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.JournalEntry
	index := make(map[string]*entity.JournalEntry)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	for i := range entries {
		index[entries[i].ID] = &entries[i]
	}
	if err := r.loadLines(index); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepo) loadLines(entries map[string]*entity.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	query := `
		SELECT entry_id, account_code, description, debit, credit, position
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, position ASC`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID string
		var line entity.JournalLine
		var desc *string
		if err := rows.Scan(&entryID, &line.AccountCode, &desc, &line.Debit, &line.Credit, &line.Position); err != nil {
			return fmt.Errorf("scan journal line: %w", err)
		}
		if desc != nil {
			line.Description = *desc
		}
		if entry, ok := entries[entryID]; ok {
			entry.Lines = append(entry.Lines, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate journal lines: %w", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*entity.JournalEntry, error) {
	var e entity.JournalEntry
	var sourceRef *string
	err := row.Scan(&e.ID, &e.Number, &e.Date, &e.Concept, &sourceRef, &e.CreatedAt, &e.CreatedBy)
	if err != nil {
		return nil, err
	}
	if sourceRef != nil {
		e.SourceRef = *sourceRef
	}
	return &e, nil
}
