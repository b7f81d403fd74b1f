package dto

import "time"

// ReportResponse entrada del historial de reportes (sin las filas).
type ReportResponse struct {
	ID          string    `json:"id"`
	ReportType  string    `json:"report_type"`
	Title       string    `json:"title"`
	GeneratedBy string    `json:"generated_by"`
	RecordCount int       `json:"record_count"`
	Status      string    `json:"status"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReportListResponse historial paginado de reportes.
type ReportListResponse struct {
	Items []ReportResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// GeneratedReport reporte recién generado con sus filas ya ordenadas.
// Headers fija el orden de columnas para CSV/PDF; Rows va fila por fila.
type GeneratedReport struct {
	ID          string     `json:"id"`
	ReportType  string     `json:"report_type"`
	Title       string     `json:"title"`
	GeneratedBy string     `json:"generated_by"`
	GeneratedAt time.Time  `json:"generated_at"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
}
