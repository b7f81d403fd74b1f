package ledger

import (
	"context"

	"github.com/dtltrading/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el reconciliador:
// el delta de la transacción y el stock del producto se escriben juntos o no
// se escribe nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
