package repository

import (
	"time"

	"github.com/jvargas/Finanzas-api/internal/domain/entity"
)

// JournalRepository puerto de persistencia del libro diario.
// Create persiste cabecera y líneas juntas; debe invocarse dentro de la misma
// transacción que la validación para que un crash no deje un asiento a medias.
type JournalRepository interface {
	// NextNumber devuelve el siguiente consecutivo del libro. Solo es seguro
	// dentro de una transacción.
	NextNumber() (int, error)
	Create(entry *entity.JournalEntry) error
	GetByID(id string) (*entity.JournalEntry, error)
	// List devuelve asientos del rango [from, to] con sus líneas, ordenados por número.
	List(from, to time.Time, limit, offset int) ([]entity.JournalEntry, error)
}
