package finanzas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
	"github.com/jvargas/Finanzas-api/internal/domain/money"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// RegisterPaymentUseCase registra abonos contra cuentas abiertas de forma
// transaccional. La fila de la cuenta se bloquea (SELECT FOR UPDATE) antes de
// derivar el saldo, de modo que dos registros concurrentes contra la misma
// cuenta no puedan leer un saldo viejo y aceptar ambos un sobrepago.
type RegisterPaymentUseCase struct {
	txRunner         TxRunner
	allowOverpayment bool // política global (FIN_ALLOW_OVERPAYMENT)
	now              func() time.Time
}

// NewRegisterPaymentUseCase construye el caso de uso.
func NewRegisterPaymentUseCase(txRunner TxRunner, allowOverpayment bool) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{txRunner: txRunner, allowOverpayment: allowOverpayment, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *RegisterPaymentUseCase) WithClock(now func() time.Time) *RegisterPaymentUseCase {
	uc.now = now
	return uc
}

// RegisterPayment valida, bloquea la cuenta y persiste el pago; devuelve la
// cuenta con su balance recalculado. Atómico: o el pago queda registrado y el
// balance refleja el nuevo saldo, o nada se escribe.
//
// El sobrepago se rechaza salvo que la política global lo permita Y el request
// lo pida explícitamente: nunca un default silencioso.
func (uc *RegisterPaymentUseCase) RegisterPayment(ctx context.Context, accountID, userID string, in dto.RegisterPaymentRequest) (*dto.AccountResponse, error) {
	if accountID == "" {
		return nil, domain.ErrInvalidInput
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, err
	}
	payDate, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidDate, in.Date)
	}
	opts := finance.RegisterOptions{
		AllowOverpayment: uc.allowOverpayment && in.AllowOverpayment,
	}
	now := uc.now()

	var resp *dto.AccountResponse
	err = uc.txRunner.Run(ctx, func(
		accountRepo repository.OpenAccountRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		// Bloquea la fila de la cuenta: serializa el check-then-act del saldo.
		acc, err := accountRepo.GetForUpdate(accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return domain.ErrNotFound
		}
		payments, err := paymentRepo.ListByAccount(accountID)
		if err != nil {
			return err
		}
		bal, err := finance.ComputeBalance(acc.OriginalAmount, payments, acc.DueDate, now)
		if err != nil {
			return err
		}
		if bal.Estado == finance.StatePagado && !opts.AllowOverpayment {
			return domain.ErrAccountClosed
		}
		if err := finance.ValidatePayment(bal.SaldoPendiente, amount, opts); err != nil {
			return err
		}

		payment := &entity.Payment{
			ID:            uuid.New().String(),
			AccountID:     accountID,
			Amount:        amount,
			Date:          payDate,
			PaymentTypeID: in.PaymentTypeID,
			Note:          in.Note,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}

		// Balance posterior al pago, con el historial ya extendido.
		payments = append(payments, *payment)
		newBal, err := finance.ComputeBalance(acc.OriginalAmount, payments, acc.DueDate, now)
		if err != nil {
			var ovErr *finance.OverpaymentError
			if !opts.AllowOverpayment || !errors.As(err, &ovErr) {
				return err
			}
			// Sobrepago permitido explícitamente: la cuenta queda saldada.
			newBal = finance.Balance{SaldoPendiente: decimal.Zero, Estado: finance.StatePagado}
		}
		resp = accountWithBalance(acc, payments, newBal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func accountWithBalance(acc *entity.OpenAccount, payments []entity.Payment, bal finance.Balance) *dto.AccountResponse {
	resp := &dto.AccountResponse{
		ID:             acc.ID,
		Kind:           acc.Kind,
		DocumentRef:    acc.DocumentRef,
		DocumentNumber: acc.DocumentNumber,
		ThirdPartyID:   acc.ThirdPartyID,
		ThirdPartyName: acc.ThirdPartyName,
		OriginalAmount: acc.OriginalAmount.StringFixed(2),
		DueDate:        acc.DueDate.Format(dto.DateLayout),
		SaldoPendiente: bal.SaldoPendiente.StringFixed(2),
		Estado:         bal.Estado,
		DiasVencido:    bal.DiasVencido,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.PaymentResponse{
			ID:            p.ID,
			Amount:        p.Amount.StringFixed(2),
			Date:          p.Date.Format(dto.DateLayout),
			PaymentTypeID: p.PaymentTypeID,
			Note:          p.Note,
		})
	}
	return resp
}
