package entity

import "time"

// Category representa una categoría de productos. Los productos referencian
// exactamente una categoría; la visibilidad por rol se define sobre categorías.
type Category struct {
	ID        string
	Name      string
	Size      string // presentación: pequeño, mediano, grande...
	Packaging string // empaque: caja, botella, bolsa...
	CreatedAt time.Time
	UpdatedAt time.Time
}
