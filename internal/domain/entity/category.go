package entity

import "time"

// Category representa una categoría de productos. Name es único sin distinguir
// mayúsculas; renombrarla cascadea CategoryName a los productos que la referencian.
type Category struct {
	ID          string
	Name        string
	Description string // máx. 30 caracteres (regla heredada del formulario)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
