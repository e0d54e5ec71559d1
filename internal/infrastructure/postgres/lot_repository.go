package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, code, product_id, product_name, purchase_line_id, warehouse_id,
		quantity, unit_cost, expiry_date, created_at, created_by`

// Create persiste un lote. Los lotes no se actualizan: no existe UPDATE.
func (r *LotRepo) Create(lot *entity.Lot) error {
	if lot.ID == "" {
		lot.ID = uuid.New().String()
	}
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, nullIfEmpty(lot.Code), lot.ProductID, lot.ProductName, lot.PurchaseLineID,
		lot.WarehouseID, lot.Quantity, lot.UnitCost, lot.ExpiryDate, lot.CreatedAt, lot.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("lote duplicado: %w", err)
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote; nil si no existe.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return lot, nil
}

// List lotes paginados, los más próximos a vencer primero (NULL al final).
func (r *LotRepo) List(limit, offset int) ([]entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + ` FROM lots
		ORDER BY expiry_date ASC NULLS LAST, created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	return collectLots(rows)
}

// ListAll snapshot completo para clasificación y reportes.
func (r *LotRepo) ListAll() ([]entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots ORDER BY expiry_date ASC NULLS LAST`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all lots: %w", err)
	}
	defer rows.Close()
	return collectLots(rows)
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	var code *string
	err := row.Scan(
		&l.ID, &code, &l.ProductID, &l.ProductName, &l.PurchaseLineID, &l.WarehouseID,
		&l.Quantity, &l.UnitCost, &l.ExpiryDate, &l.CreatedAt, &l.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if code != nil {
		l.Code = *code
	}
	return &l, nil
}

func collectLots(rows pgx.Rows) ([]entity.Lot, error) {
	var lots []entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		lots = append(lots, *lot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lots: %w", err)
	}
	return lots, nil
}
