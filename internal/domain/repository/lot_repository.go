package repository

import "github.com/jvargas/Finanzas-api/internal/domain/entity"

// LotRepository define el puerto de persistencia para lotes de inventario.
// Los lotes son inmutables tras su creación: no hay Update ni Delete.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	List(limit, offset int) ([]entity.Lot, error)
	// ListAll devuelve el snapshot completo para clasificación y reportes.
	ListAll() ([]entity.Lot, error)
}
