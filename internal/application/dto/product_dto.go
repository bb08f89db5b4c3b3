package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para cadastrar um produto.
type CreateProductRequest struct {
	Code        ID               `json:"code" validate:"min=1"`
	Description string           `json:"description" validate:"required,max=200"`
	Group       string           `json:"group" validate:"required,max=100"`
	Company     string           `json:"company" validate:"required,max=100"`
	Weight      *decimal.Decimal `json:"weight" validate:"omitempty,gt=0"`
}

// Validate valida campos obligatorios.
func (r *CreateProductRequest) Validate() error {
	return check(r)
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1,max=200"`
	Group       *string          `json:"group" validate:"omitempty,max=100"`
	Company     *string          `json:"company" validate:"omitempty,max=100"`
	Weight      *decimal.Decimal `json:"weight" validate:"omitempty,gt=0"`
}

// Validate valida sólo los campos informados.
func (r *UpdateProductRequest) Validate() error {
	return check(r)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Code        ID               `json:"code"`
	Description string           `json:"description"`
	Group       string           `json:"group"`
	Company     string           `json:"company"`
	Weight      *decimal.Decimal `json:"weight"`
}
