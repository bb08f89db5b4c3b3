package dto

import (
	"strings"
	"time"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=30"`
	Username string `json:"username" validate:"required,min=3,max=20,username"`
	Password string `json:"password" validate:"required,min=6,max=64,bcryptmax"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

// Validate recorta nombre y username antes de validar.
func (r *CreateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Username = strings.TrimSpace(r.Username)
	return check(r)
}

// UpdateUserRequest actualización parcial; Password, si viene, se vuelve a hashear.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=30"`
	Username *string `json:"username" validate:"omitempty,min=3,max=20,username"`
	Password *string `json:"password" validate:"omitempty,min=6,max=64,bcryptmax"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
	Active   *bool   `json:"active"`
}

// Validate valida sólo los campos informados.
func (r *UpdateUserRequest) Validate() error {
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
	if r.Username != nil {
		u := strings.TrimSpace(*r.Username)
		r.Username = &u
	}
	return check(r)
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest credenciales de POST /auth.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate exige username y password de al menos 6 caracteres.
func (r *LoginRequest) Validate() error {
	return check(r)
}

// LoginResponse resumen del usuario más token firmado.
type LoginResponse struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Active   bool   `json:"active"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
