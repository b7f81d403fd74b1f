package repository

import "github.com/dtltrading/almacen-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para el log de auditoría.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	// ListByEntity devuelve el historial de una entidad en orden cronológico.
	ListByEntity(entityType, entityID string) ([]*entity.AuditLog, error)
}
