package repository

import "github.com/dtltrading/almacen-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia para el historial de reportes.
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	// List devuelve el historial ordenado por fecha de generación descendente.
	List(limit, offset int) ([]*entity.Report, error)
}
