package entity

import "time"

// RefreshToken token opaco de renovación de sesión, persistido con expiración.
type RefreshToken struct {
	ID         string
	Token      string
	UserID     string
	ExpiryDate time.Time
	CreatedAt  time.Time
}

// Expired indica si el token ya venció.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiryDate)
}
