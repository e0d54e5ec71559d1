package inventario

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
	"github.com/jvargas/Finanzas-api/internal/domain/money"
	"github.com/jvargas/Finanzas-api/internal/domain/repository"
)

// LotsUseCase alta y consulta de lotes con clasificación de vencimiento.
// El reloj es inyectable: toda clasificación usa una fecha de referencia
// explícita y los tests no dependen del reloj de pared.
type LotsUseCase struct {
	lotRepo    repository.LotRepository
	thresholds expiry.Thresholds
	now        func() time.Time
}

// NewLotsUseCase construye el caso de uso con los umbrales configurados.
func NewLotsUseCase(lotRepo repository.LotRepository, th expiry.Thresholds) *LotsUseCase {
	return &LotsUseCase{lotRepo: lotRepo, thresholds: th, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *LotsUseCase) WithClock(now func() time.Time) *LotsUseCase {
	uc.now = now
	return uc
}

// RegisterLot valida y persiste un lote recibido en una línea de compra.
func (uc *LotsUseCase) RegisterLot(userID string, in dto.RegisterLotRequest) (*dto.LotResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.PurchaseLineID == "" {
		return nil, domain.ErrInvalidInput
	}
	qty, err := money.ParseNonNegative(in.Quantity)
	if err != nil {
		return nil, err
	}
	unitCost, err := money.ParseNonNegative(in.UnitCost)
	if err != nil {
		return nil, err
	}

	var expiryDate *time.Time
	if in.ExpiryDate != "" {
		d, err := time.Parse(dto.DateLayout, in.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: expiry_date %q", domain.ErrInvalidDate, in.ExpiryDate)
		}
		expiryDate = &d
	}

	lot := &entity.Lot{
		ID:             uuid.New().String(),
		Code:           in.Code,
		ProductID:      in.ProductID,
		ProductName:    in.ProductName,
		PurchaseLineID: in.PurchaseLineID,
		WarehouseID:    in.WarehouseID,
		Quantity:       qty,
		UnitCost:       unitCost,
		ExpiryDate:     expiryDate,
		CreatedAt:      uc.now(),
		CreatedBy:      userID,
	}
	if err := uc.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	resp := uc.toResponse(lot, uc.now())
	return &resp, nil
}

// GetLot devuelve un lote clasificado a la fecha de referencia.
func (uc *LotsUseCase) GetLot(id string, referenceDate *time.Time) (*dto.LotResponse, error) {
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	ref := uc.now()
	if referenceDate != nil {
		ref = *referenceDate
	}
	resp := uc.toResponse(lot, ref)
	return &resp, nil
}

// ListLots lista lotes paginados, cada uno con su estado de vencimiento
// derivado a referenceDate (nil = ahora).
func (uc *LotsUseCase) ListLots(page dto.PageRequest, referenceDate *time.Time) (*dto.LotListResponse, error) {
	page.DefaultPage()
	lots, err := uc.lotRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	ref := uc.now()
	if referenceDate != nil {
		ref = *referenceDate
	}
	out := &dto.LotListResponse{
		Lots: make([]dto.LotResponse, 0, len(lots)),
		Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for i := range lots {
		out.Lots = append(out.Lots, uc.toResponse(&lots[i], ref))
	}
	return out, nil
}

// Thresholds expone los umbrales activos (para reportes).
func (uc *LotsUseCase) Thresholds() expiry.Thresholds {
	return uc.thresholds
}

func (uc *LotsUseCase) toResponse(lot *entity.Lot, ref time.Time) dto.LotResponse {
	r := expiry.Classify(lot.ExpiryDate, ref, uc.thresholds)
	resp := dto.LotResponse{
		ID:             lot.ID,
		Code:           lot.Code,
		ProductID:      lot.ProductID,
		ProductName:    lot.ProductName,
		PurchaseLineID: lot.PurchaseLineID,
		WarehouseID:    lot.WarehouseID,
		Quantity:       lot.Quantity.String(),
		UnitCost:       lot.UnitCost.StringFixed(2),
		Value:          lot.Value().StringFixed(2),
		Estado:         string(r.State),
		DiasRestantes:  r.DaysRemaining,
	}
	if lot.ExpiryDate != nil {
		resp.ExpiryDate = lot.ExpiryDate.Format(dto.DateLayout)
	}
	return resp
}
