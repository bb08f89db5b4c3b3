package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un operador del sistema de expedição.
type User struct {
	ID           int64
	Name         string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // admin, user
	Active       bool
	CreatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
