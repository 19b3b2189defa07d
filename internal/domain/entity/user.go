package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User representa un usuario de la aplicación.
// AllowedCategoryIDs restringe la visibilidad de un EMPLOYEE; vacío significa
// sin restricción (misma visibilidad que ADMIN, decisión explícita de diseño).
type User struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	Role               string // ADMIN, EMPLOYEE
	AllowedCategoryIDs []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
