package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/report"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

var _ repository.OpenAccountRepository = (*OpenAccountRepo)(nil)
var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// OpenAccountRepo implementación de OpenAccountRepository (usable con pool o tx).
type OpenAccountRepo struct {
	q Querier
}

// NewOpenAccountRepository construye el adaptador de cuentas. Pasar pool o tx.
func NewOpenAccountRepository(q Querier) *OpenAccountRepo {
	return &OpenAccountRepo{q: q}
}

const accountColumns = `id, kind, document_ref, document_number, third_party_id,
		third_party_name, original_amount, due_date, created_at, created_by`

// Create persiste la cuenta abierta.
func (r *OpenAccountRepo) Create(acc *entity.OpenAccount) error {
	if acc.ID == "" {
		acc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO open_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		acc.ID, acc.Kind, acc.DocumentRef, nullIfEmpty(acc.DocumentNumber),
		acc.ThirdPartyID, acc.ThirdPartyName, acc.OriginalAmount, acc.DueDate,
		acc.CreatedAt, acc.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cuenta duplicada para el documento: %w", err)
		}
		return fmt.Errorf("insert open account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta; nil si no existe.
func (r *OpenAccountRepo) GetByID(id string) (*entity.OpenAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM open_accounts WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene la cuenta y bloquea su fila (SELECT FOR UPDATE).
// Dentro de una tx serializa los registros de pago concurrentes contra el
// mismo saldo; fuera de una tx el bloqueo no tiene efecto útil.
func (r *OpenAccountRepo) GetForUpdate(id string) (*entity.OpenAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM open_accounts WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *OpenAccountRepo) getOne(query, id string) (*entity.OpenAccount, error) {
	acc, err := scanAccount(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open account: %w", err)
	}
	return acc, nil
}

// List cuentas por tipo, las de vencimiento más próximo primero.
func (r *OpenAccountRepo) List(kind string, limit, offset int) ([]entity.OpenAccount, error) {
	query := `
		SELECT ` + accountColumns + ` FROM open_accounts
		WHERE ($1 = '' OR kind = $1)
		ORDER BY due_date ASC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list open accounts: %w", err)
	}
	defer rows.Close()

	var accounts []entity.OpenAccount
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan open account: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate open accounts: %w", err)
	}
	return accounts, nil
}

// ListWithPayments snapshot cuenta+pagos para los reportes. Dos queries en
// lugar de un JOIN: el historial se arma en memoria agrupando por cuenta.
func (r *OpenAccountRepo) ListWithPayments(kind string) ([]report.AccountWithPayments, error) {
	accounts, err := r.List(kind, 100000, 0)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT p.id, p.account_id, p.amount, p.date, p.payment_type_id, p.note, p.created_at, p.created_by
		FROM payments p
		JOIN open_accounts a ON a.id = p.account_id
		WHERE ($1 = '' OR a.kind = $1)
		ORDER BY p.created_at ASC, p.id ASC`
	rows, err := r.q.Query(context.Background(), query, kind)
	if err != nil {
		return nil, fmt.Errorf("list payments for accounts: %w", err)
	}
	defer rows.Close()

	byAccount := make(map[string][]entity.Payment)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		byAccount[p.AccountID] = append(byAccount[p.AccountID], *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	out := make([]report.AccountWithPayments, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, report.AccountWithPayments{
			Account:  acc,
			Payments: byAccount[acc.ID],
		})
	}
	return out, nil
}

func scanAccount(row pgx.Row) (*entity.OpenAccount, error) {
	var a entity.OpenAccount
	var docNumber *string
	err := row.Scan(
		&a.ID, &a.Kind, &a.DocumentRef, &docNumber, &a.ThirdPartyID,
		&a.ThirdPartyName, &a.OriginalAmount, &a.DueDate, &a.CreatedAt, &a.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if docNumber != nil {
		a.DocumentNumber = *docNumber
	}
	return &a, nil
}

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
// Solo INSERT y SELECT: los pagos son append-only.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payments (id, account_id, amount, date, payment_type_id, note, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.AccountID, p.Amount, p.Date, nullIfEmpty(p.PaymentTypeID),
		nullIfEmpty(p.Note), p.CreatedAt, p.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByAccount pagos de una cuenta en orden de inserción (el más antiguo primero).
func (r *PaymentRepo) ListByAccount(accountID string) ([]entity.Payment, error) {
	query := `
		SELECT id, account_id, amount, date, payment_type_id, note, created_at, created_by
		FROM payments WHERE account_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var typeID, note *string
	err := row.Scan(&p.ID, &p.AccountID, &p.Amount, &p.Date, &typeID, &note, &p.CreatedAt, &p.CreatedBy)
	if err != nil {
		return nil, err
	}
	if typeID != nil {
		p.PaymentTypeID = *typeID
	}
	if note != nil {
		p.Note = *note
	}
	return &p, nil
}
