package finanzas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/application/finanzas"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
	"github.com/jvargas/Finanzas-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: simulan la transacción con commit/rollback sobre el slice
// de pagos, para verificar la atomicidad del caso de uso sin una DB real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	account  *entity.OpenAccount
	payments []entity.Payment
}

type fakeAccountRepo struct{ s *fakeStore }

func (r *fakeAccountRepo) Create(acc *entity.OpenAccount) error { r.s.account = acc; return nil }
func (r *fakeAccountRepo) GetByID(id string) (*entity.OpenAccount, error) {
	if r.s.account != nil && r.s.account.ID == id {
		return r.s.account, nil
	}
	return nil, nil
}
func (r *fakeAccountRepo) GetForUpdate(id string) (*entity.OpenAccount, error) {
	return r.GetByID(id)
}
func (r *fakeAccountRepo) List(string, int, int) ([]entity.OpenAccount, error) { return nil, nil }
func (r *fakeAccountRepo) ListWithPayments(string) ([]report.AccountWithPayments, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	s       *fakeStore
	pending []entity.Payment // escritos dentro de la tx, aún sin commit
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.pending = append(r.pending, *p)
	return nil
}
func (r *fakePaymentRepo) ListByAccount(accountID string) ([]entity.Payment, error) {
	out := append([]entity.Payment{}, r.s.payments...)
	out = append(out, r.pending...)
	return out, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	accountRepo repository.OpenAccountRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	payRepo := &fakePaymentRepo{s: t.s}
	if err := fn(&fakeAccountRepo{s: t.s}, payRepo); err != nil {
		return err // rollback: pending se descarta
	}
	t.s.payments = append(t.s.payments, payRepo.pending...) // commit
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

var clock = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

func newStore(original string, due time.Time) *fakeStore {
	return &fakeStore{
		account: &entity.OpenAccount{
			ID:             "acc-1",
			Kind:           entity.AccountKindPayable,
			DocumentRef:    "compra-99",
			OriginalAmount: decimal.RequireFromString(original),
			DueDate:        due,
		},
	}
}

func TestRegisterPayment_AbonoParcial(t *testing.T) {
	s := newStore("1000.00", clock().AddDate(0, 0, 10))
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	resp, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "300.00", Date: "2025-06-15", PaymentTypeID: "efectivo",
	})
	require.NoError(t, err)

	assert.Equal(t, "700.00", resp.SaldoPendiente)
	assert.Equal(t, finance.StateParcial, resp.Estado)
	assert.Len(t, s.payments, 1, "el pago debe quedar persistido tras el commit")
}

func TestRegisterPayment_SobrepagoRechazadoNoEscribe(t *testing.T) {
	s := newStore("100.00", clock().AddDate(0, 0, 10))
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	_, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "150.00", Date: "2025-06-15",
	})

	var ovErr *finance.OverpaymentError
	require.ErrorAs(t, err, &ovErr)
	assert.Empty(t, s.payments, "un pago rechazado no debe dejar rastro (rollback)")
}

func TestRegisterPayment_SobrepagoPermitidoExplicito(t *testing.T) {
	s := newStore("100.00", clock().AddDate(0, 0, 10))
	// Política global activa + flag del request: ambos requeridos.
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, true).WithClock(clock)

	resp, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "150.00", Date: "2025-06-15", AllowOverpayment: true,
	})
	require.NoError(t, err)
	assert.Equal(t, finance.StatePagado, resp.Estado)
	assert.Len(t, s.payments, 1)
}

func TestRegisterPayment_FlagDelRequestSinPoliticaGlobal(t *testing.T) {
	s := newStore("100.00", clock().AddDate(0, 0, 10))
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	_, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "150.00", Date: "2025-06-15", AllowOverpayment: true,
	})

	var ovErr *finance.OverpaymentError
	assert.ErrorAs(t, err, &ovErr,
		"el flag del request no basta si FIN_ALLOW_OVERPAYMENT está apagado")
}

func TestRegisterPayment_CuentaPagadaRechazaAbonos(t *testing.T) {
	s := newStore("100.00", clock().AddDate(0, 0, 10))
	s.payments = []entity.Payment{{ID: "p0", AccountID: "acc-1", Amount: decimal.RequireFromString("100.00")}}
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	_, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "10.00", Date: "2025-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrAccountClosed)
}

func TestRegisterPayment_MontoInvalido(t *testing.T) {
	s := newStore("100.00", clock().AddDate(0, 0, 10))
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	_, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "no-es-numero", Date: "2025-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "0", Date: "2025-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestRegisterPayment_FechaInvalida(t *testing.T) {
	s := newStore("100.00", clock().AddDate(0, 0, 10))
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	_, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "10.00", Date: "15/06/2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestRegisterPayment_CuentaInexistente(t *testing.T) {
	s := newStore("100.00", clock().AddDate(0, 0, 10))
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	_, err := uc.RegisterPayment(context.Background(), "no-existe", "u1", dto.RegisterPaymentRequest{
		Amount: "10.00", Date: "2025-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cuenta vencida con abono parcial: el balance resultante reporta VENCIDO.
func TestRegisterPayment_AbonoSobreCuentaVencida(t *testing.T) {
	s := newStore("1000.00", clock().AddDate(0, 0, -1))
	s.payments = []entity.Payment{{ID: "p0", AccountID: "acc-1", Amount: decimal.RequireFromString("300.00")}}
	uc := finanzas.NewRegisterPaymentUseCase(&fakeTxRunner{s: s}, false).WithClock(clock)

	resp, err := uc.RegisterPayment(context.Background(), "acc-1", "u1", dto.RegisterPaymentRequest{
		Amount: "200.00", Date: "2025-06-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "500.00", resp.SaldoPendiente)
	assert.Equal(t, 1, resp.DiasVencido)
	assert.Equal(t, finance.StateVencido, resp.Estado)
}
