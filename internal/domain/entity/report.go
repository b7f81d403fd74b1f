package entity

import (
	"encoding/json"
	"time"
)

// Tipos de reporte disponibles.
const (
	ReportTypeInventory    = "inventory"
	ReportTypeLowStock     = "low_stock"
	ReportTypeTransactions = "transactions"
	ReportTypeValuation    = "valuation"
)

// Report es una entrada del historial de reportes generados.
// Data conserva las filas tal como se generaron, para poder re-exportarlas.
type Report struct {
	ID          string
	UserID      string
	GeneratedBy string // nombre completo del usuario al momento de generar
	ReportType  string
	Title       string
	RecordCount int
	Status      string // Completed, Failed
	Data        json.RawMessage
	GeneratedAt time.Time
}
