package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN         = "IN"
	TransactionTypeOUT        = "OUT"
	TransactionTypeADJUSTMENT = "ADJUSTMENT"
)

// ValidTransactionType indica si el tipo es uno de los admitidos.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIN || t == TransactionTypeOUT || t == TransactionTypeADJUSTMENT
}

// StockTransaction representa un movimiento del ledger de stock.
//
// Quantity es el delta YA RESUELTO con signo: positivo sube stock, negativo lo
// baja. Para ADJUSTMENT se guarda target - base, no el valor ingresado.
// El invariante del ledger: para todo producto P,
//
//	P.Quantity == base(P) + Σ(Quantity de cada transacción existente de P)
//
// Los campos EditedBy/EditedAt/EditReason solo se llenan por la ruta de edición.
type StockTransaction struct {
	ID              string
	ProductID       string
	ProductName     string // snapshot al crear (se reasigna si la edición cambia de producto)
	UserID          string
	UserName        string
	TransactionType string // IN, OUT, ADJUSTMENT
	Quantity        int64  // delta con signo
	Reason          string
	TransactionDate time.Time // inmutable después de crear
	EditedBy        string
	EditedAt        *time.Time
	EditReason      string
}
