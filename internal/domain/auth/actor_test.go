package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/auth"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
)

func TestActor_AdminSiempreSinRestriccion(t *testing.T) {
	admin := auth.Actor{Role: entity.RoleAdmin, AllowedCategories: []string{"cat-1"}}

	assert.True(t, admin.Unrestricted(), "ADMIN es sin restricción aunque tenga categorías asignadas")
	assert.True(t, admin.CanAccessCategory("cat-1"))
	assert.True(t, admin.CanAccessCategory("cat-otra"), "ADMIN accede a cualquier categoría")
}

func TestActor_EmpleadoSinCategoriasEsSinRestriccion(t *testing.T) {
	// Conjunto vacío = sin restricción de visibilidad, no "sin acceso a nada".
	employee := auth.Actor{Role: entity.RoleEmployee}

	assert.True(t, employee.Unrestricted())
	assert.True(t, employee.CanAccessCategory("cualquiera"))
	assert.NoError(t, auth.CheckCategoryAccess(employee, "cualquiera"))
}

func TestActor_EmpleadoRestringidoSoloSusCategorias(t *testing.T) {
	employee := auth.Actor{
		Role:              entity.RoleEmployee,
		AllowedCategories: []string{"cat-1", "cat-2"},
	}

	assert.False(t, employee.Unrestricted())
	assert.True(t, employee.CanAccessCategory("cat-1"))
	assert.True(t, employee.CanAccessCategory("cat-2"))
	assert.False(t, employee.CanAccessCategory("cat-3"))
}

func TestCheckCategoryAccess_DevuelveForbidden(t *testing.T) {
	employee := auth.Actor{
		Role:              entity.RoleEmployee,
		AllowedCategories: []string{"cat-1"},
	}

	assert.NoError(t, auth.CheckCategoryAccess(employee, "cat-1"))

	err := auth.CheckCategoryAccess(employee, "cat-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
