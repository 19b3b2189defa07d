package dto

import "time"

// CreateUserRequest body para POST /api/users (solo ADMIN).
// CategoryIDs vacío crea un empleado sin restricción de visibilidad.
type CreateUserRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	CategoryIDs []string `json:"category_ids,omitempty"`
}

// UserResponse representación de un usuario en respuestas (sin credenciales).
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CategoryIDs []string  `json:"category_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
