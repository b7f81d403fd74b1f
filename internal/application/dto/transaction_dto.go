package dto

import "time"

// RecordTransactionRequest body para POST /api/transactions.
// Quantity es el valor ingresado sin signo: cantidad movida para IN/OUT
// (mínimo 1), nivel absoluto deseado para ADJUSTMENT.
type RecordTransactionRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	TransactionType string `json:"transaction_type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity        int64  `json:"quantity" validate:"min=0"`
	Reason          string `json:"reason" validate:"max=500"`
}

// EditTransactionRequest body para PUT /api/transactions/:id.
// EditReason es obligatorio; la edición queda auditada.
type EditTransactionRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	TransactionType string `json:"transaction_type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity        int64  `json:"quantity" validate:"min=0"`
	EditReason      string `json:"edit_reason" validate:"required,min=1,max=500"`
}

// TransactionResponse salida de una transacción del ledger.
// Quantity es el delta resuelto con signo.
type TransactionResponse struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"product_id"`
	ProductName     string     `json:"product_name"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	TransactionType string     `json:"transaction_type"`
	Quantity        int64      `json:"quantity"`
	Reason          string     `json:"reason,omitempty"`
	TransactionDate time.Time  `json:"transaction_date"`
	EditedBy        string     `json:"edited_by,omitempty"`
	EditedAt        *time.Time `json:"edited_at,omitempty"`
	EditReason      string     `json:"edit_reason,omitempty"`
}

// TransactionResultResponse transacción más el stock final del producto afectado.
type TransactionResultResponse struct {
	Transaction     TransactionResponse `json:"transaction"`
	ProductQuantity int64               `json:"product_quantity"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// AuditEntryResponse un evento del historial de auditoría de una transacción.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
