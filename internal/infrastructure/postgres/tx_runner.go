package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jvargas/Finanzas-api/internal/application/contabilidad"
	"github.com/jvargas/Finanzas-api/internal/application/finanzas"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// Ensure TxRunner implements finanzas.TxRunner and contabilidad.TxRunner.
var _ finanzas.TxRunner = (*TxRunner)(nil)
var _ contabilidad.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos de cuentas y pagos
// atados a la tx y hace Commit o Rollback. Es la frontera de atomicidad del
// registro de pagos: el SELECT FOR UPDATE de la cuenta vive dentro de esta tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	accountRepo repository.OpenAccountRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOpenAccountRepository(tx), NewPaymentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunJournal inicia una transacción con el repo del libro diario (para
// validar y persistir asientos en una sola frontera atómica).
func (r *TxRunner) RunJournal(ctx context.Context, fn func(journalRepo repository.JournalRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewJournalRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
