// Package auth define el actor autenticado y la regla de autorización por
// categoría. El actor es un valor explícito {rol, categorías permitidas} que se
// pasa a cada operación del core, en lugar de leerse de un contexto ambiental;
// así la regla es una función pura y testeable sin sesión simulada.
package auth

import (
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

// Actor es el llamador autenticado: rol y alcance de visibilidad por categorías.
type Actor struct {
	Role              string
	AllowedCategories []string // IDs de categoría; vacío = sin restricción
}

// Unrestricted indica si el actor ve todo: ADMIN siempre, o EMPLOYEE sin
// categorías asignadas (conjunto vacío = sin restricción, decisión explícita).
func (a Actor) Unrestricted() bool {
	return a.Role == entity.RoleAdmin || len(a.AllowedCategories) == 0
}

// CanAccessCategory indica si el actor puede operar sobre la categoría dada.
func (a Actor) CanAccessCategory(categoryID string) bool {
	if a.Unrestricted() {
		return true
	}
	for _, id := range a.AllowedCategories {
		if id == categoryID {
			return true
		}
	}
	return false
}

// CheckCategoryAccess aplica la regla única de autorización: ADMIN siempre pasa;
// EMPLOYEE sin restricción pasa; EMPLOYEE restringido pasa solo si la categoría
// pertenece a su conjunto. Se aplica uniformemente a crear/leer/actualizar
// producto y a registrar entradas/salidas de stock.
func CheckCategoryAccess(actor Actor, categoryID string) error {
	if !actor.CanAccessCategory(categoryID) {
		return domain.ErrForbidden
	}
	return nil
}
