package entity

import "time"

// Acciones registradas en el log de auditoría.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog registra quién hizo qué sobre qué entidad (productos, categorías,
// transacciones). Detail es texto libre con el antes/después relevante.
type AuditLog struct {
	ID        string
	UserID    string
	UserName  string
	Action    string // create, update, delete
	Entity    string // product, category, transaction
	EntityID  string
	Detail    string
	CreatedAt time.Time
}
