package inventario_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/application/inventario"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
)

type fakeLotRepo struct {
	lots []entity.Lot
}

func (r *fakeLotRepo) Create(lot *entity.Lot) error { r.lots = append(r.lots, *lot); return nil }
func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) {
	for i := range r.lots {
		if r.lots[i].ID == id {
			return &r.lots[i], nil
		}
	}
	return nil, nil
}
func (r *fakeLotRepo) List(limit, offset int) ([]entity.Lot, error) {
	if offset >= len(r.lots) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.lots) {
		end = len(r.lots)
	}
	return r.lots[offset:end], nil
}
func (r *fakeLotRepo) ListAll() ([]entity.Lot, error) { return r.lots, nil }

var clock = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

func newUC(repo *fakeLotRepo) *inventario.LotsUseCase {
	return inventario.NewLotsUseCase(repo, expiry.DefaultThresholds()).WithClock(clock)
}

func TestRegisterLot_ClasificaAlRegistrar(t *testing.T) {
	repo := &fakeLotRepo{}
	uc := newUC(repo)

	// Vence en 5 días desde el reloj fijo: CRITICO con umbral default de 7.
	out, err := uc.RegisterLot("user-1", dto.RegisterLotRequest{
		Code:           "L-001",
		ProductID:      "prod-1",
		ProductName:    "Amoxicilina 500mg",
		PurchaseLineID: "pl-1",
		WarehouseID:    "wh-1",
		Quantity:       "100",
		UnitCost:       "2.50",
		ExpiryDate:     "2025-06-20",
	})
	require.NoError(t, err)

	assert.Equal(t, "CRITICO", out.Estado)
	require.NotNil(t, out.DiasRestantes)
	assert.Equal(t, 5, *out.DiasRestantes)
	assert.Equal(t, "250.00", out.Value)
	require.Len(t, repo.lots, 1)
	assert.Equal(t, "user-1", repo.lots[0].CreatedBy)
}

func TestRegisterLot_SinVencimiento(t *testing.T) {
	uc := newUC(&fakeLotRepo{})

	out, err := uc.RegisterLot("user-1", dto.RegisterLotRequest{
		ProductID:      "prod-1",
		PurchaseLineID: "pl-1",
		WarehouseID:    "wh-1",
		Quantity:       "10",
		UnitCost:       "1.00",
	})
	require.NoError(t, err)

	assert.Equal(t, "VIGENTE", out.Estado)
	assert.Nil(t, out.DiasRestantes, "sin fecha de vencimiento no hay días restantes")
	assert.Empty(t, out.ExpiryDate)
}

func TestRegisterLot_Invalido(t *testing.T) {
	uc := newUC(&fakeLotRepo{})

	_, err := uc.RegisterLot("user-1", dto.RegisterLotRequest{
		ProductID: "prod-1", // faltan warehouse y purchase_line
		Quantity:  "10",
		UnitCost:  "1.00",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterLot("user-1", dto.RegisterLotRequest{
		ProductID:      "prod-1",
		PurchaseLineID: "pl-1",
		WarehouseID:    "wh-1",
		Quantity:       "-5", // negativo
		UnitCost:       "1.00",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.RegisterLot("user-1", dto.RegisterLotRequest{
		ProductID:      "prod-1",
		PurchaseLineID: "pl-1",
		WarehouseID:    "wh-1",
		Quantity:       "5",
		UnitCost:       "1.00",
		ExpiryDate:     "20/06/2025", // formato incorrecto
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetLot_FechaReferenciaExplicita(t *testing.T) {
	repo := &fakeLotRepo{}
	uc := newUC(repo)

	created, err := uc.RegisterLot("user-1", dto.RegisterLotRequest{
		ProductID:      "prod-1",
		PurchaseLineID: "pl-1",
		WarehouseID:    "wh-1",
		Quantity:       "10",
		UnitCost:       "1.00",
		ExpiryDate:     "2025-06-20",
	})
	require.NoError(t, err)

	// Consultado después del vencimiento, el mismo lote reporta VENCIDO.
	after := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	out, err := uc.GetLot(created.ID, &after)
	require.NoError(t, err)
	assert.Equal(t, "VENCIDO", out.Estado)
	require.NotNil(t, out.DiasRestantes)
	assert.Equal(t, -5, *out.DiasRestantes)
}

func TestGetLot_NoExiste(t *testing.T) {
	uc := newUC(&fakeLotRepo{})

	_, err := uc.GetLot("no-existe", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLots_Paginado(t *testing.T) {
	repo := &fakeLotRepo{}
	uc := newUC(repo)
	for _, code := range []string{"L-001", "L-002", "L-003"} {
		_, err := uc.RegisterLot("user-1", dto.RegisterLotRequest{
			Code:           code,
			ProductID:      "prod-1",
			PurchaseLineID: "pl-" + code,
			WarehouseID:    "wh-1",
			Quantity:       "1",
			UnitCost:       "1.00",
		})
		require.NoError(t, err)
	}

	out, err := uc.ListLots(dto.PageRequest{Limit: 2, Offset: 0}, nil)
	require.NoError(t, err)
	assert.Len(t, out.Lots, 2)
	assert.Equal(t, 2, out.Page.Limit)

	out, err = uc.ListLots(dto.PageRequest{Limit: 2, Offset: 2}, nil)
	require.NoError(t, err)
	assert.Len(t, out.Lots, 1)
}
