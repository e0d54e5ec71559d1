package finanzas

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
	"github.com/jvargas/Finanzas-api/internal/domain/money"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// AccountsUseCase alta y consulta de cuentas por pagar/cobrar. El saldo y el
// estado siempre se derivan del historial de pagos al momento de la consulta.
type AccountsUseCase struct {
	accountRepo repository.OpenAccountRepository
	paymentRepo repository.PaymentRepository
	now         func() time.Time
}

// NewAccountsUseCase construye el caso de uso.
func NewAccountsUseCase(accountRepo repository.OpenAccountRepository, paymentRepo repository.PaymentRepository) *AccountsUseCase {
	return &AccountsUseCase{accountRepo: accountRepo, paymentRepo: paymentRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *AccountsUseCase) WithClock(now func() time.Time) *AccountsUseCase {
	uc.now = now
	return uc
}

// CreateAccount valida y persiste una cuenta abierta.
func (uc *AccountsUseCase) CreateAccount(userID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Kind != entity.AccountKindPayable && in.Kind != entity.AccountKindReceivable {
		return nil, domain.ErrInvalidInput
	}
	if in.DocumentRef == "" || in.ThirdPartyID == "" {
		return nil, domain.ErrInvalidInput
	}
	amount, err := money.ParseNonNegative(in.OriginalAmount)
	if err != nil {
		return nil, err
	}
	due, err := time.Parse(dto.DateLayout, in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: due_date %q", domain.ErrInvalidDate, in.DueDate)
	}

	acc := &entity.OpenAccount{
		ID:             uuid.New().String(),
		Kind:           in.Kind,
		DocumentRef:    in.DocumentRef,
		DocumentNumber: in.DocumentNumber,
		ThirdPartyID:   in.ThirdPartyID,
		ThirdPartyName: in.ThirdPartyName,
		OriginalAmount: amount,
		DueDate:        due,
		CreatedAt:      uc.now(),
		CreatedBy:      userID,
	}
	if err := uc.accountRepo.Create(acc); err != nil {
		return nil, err
	}
	return uc.toResponse(acc, nil, uc.now())
}

// GetAccount devuelve la cuenta con balance derivado y su historial de pagos.
func (uc *AccountsUseCase) GetAccount(id string, referenceDate *time.Time) (*dto.AccountResponse, error) {
	acc, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListByAccount(id)
	if err != nil {
		return nil, err
	}
	ref := uc.now()
	if referenceDate != nil {
		ref = *referenceDate
	}
	return uc.toResponse(acc, payments, ref)
}

// ListAccounts lista cuentas por tipo con balance derivado a referenceDate.
func (uc *AccountsUseCase) ListAccounts(kind string, page dto.PageRequest, referenceDate *time.Time) (*dto.AccountListResponse, error) {
	if kind != "" && kind != entity.AccountKindPayable && kind != entity.AccountKindReceivable {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	accounts, err := uc.accountRepo.List(kind, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	ref := uc.now()
	if referenceDate != nil {
		ref = *referenceDate
	}
	out := &dto.AccountListResponse{
		Accounts: make([]dto.AccountResponse, 0, len(accounts)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for i := range accounts {
		payments, err := uc.paymentRepo.ListByAccount(accounts[i].ID)
		if err != nil {
			return nil, err
		}
		resp, err := uc.toResponse(&accounts[i], payments, ref)
		if err != nil {
			return nil, err
		}
		out.Accounts = append(out.Accounts, *resp)
	}
	return out, nil
}

func (uc *AccountsUseCase) toResponse(acc *entity.OpenAccount, payments []entity.Payment, ref time.Time) (*dto.AccountResponse, error) {
	bal, err := finance.ComputeBalance(acc.OriginalAmount, payments, acc.DueDate, ref)
	if err != nil {
		return nil, err
	}
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
	return resp, nil
}
