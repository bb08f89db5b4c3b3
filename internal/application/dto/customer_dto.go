package dto

import "strings"

// CreateCustomerRequest entrada para cadastrar um cliente.
type CreateCustomerRequest struct {
	Code              ID     `json:"code" validate:"min=1"`
	LegalName         string `json:"legal_name" validate:"required"`
	FantasyName       string `json:"fantasy_name" validate:"required"`
	TaxID             string `json:"cnpj_cpf" validate:"required,number"`
	StateRegistration string `json:"state_registration" validate:"required"`
	State             string `json:"state" validate:"required"`
	Neighborhood      string `json:"neighborhood" validate:"required"`
	Street            string `json:"address" validate:"required"`
	PostalCode        string `json:"cep" validate:"required"`
	CorporateNetwork  string `json:"corporate_network" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,number"`
	PaymentMethod     string `json:"payment_method" validate:"required"`
}

// Normalize recorta espacios y pasa la UF a mayúsculas.
func (r *CreateCustomerRequest) Normalize() {
	r.LegalName = strings.TrimSpace(r.LegalName)
	r.FantasyName = strings.TrimSpace(r.FantasyName)
	r.TaxID = strings.TrimSpace(r.TaxID)
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

// Validate valida campos obligatorios y formatos.
func (r *CreateCustomerRequest) Validate() error {
	return check(r)
}

// UpdateCustomerRequest actualización parcial: sólo los campos presentes se aplican.
type UpdateCustomerRequest struct {
	LegalName         *string `json:"legal_name" validate:"omitempty,min=1"`
	FantasyName       *string `json:"fantasy_name"`
	TaxID             *string `json:"cnpj_cpf" validate:"omitempty,min=1,number"`
	StateRegistration *string `json:"state_registration"`
	State             *string `json:"state"`
	Neighborhood      *string `json:"neighborhood"`
	Street            *string `json:"address"`
	PostalCode        *string `json:"cep"`
	CorporateNetwork  *string `json:"corporate_network"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone" validate:"omitempty,number"`
	PaymentMethod     *string `json:"payment_method"`
}

// Validate valida sólo los campos informados.
func (r *UpdateCustomerRequest) Validate() error {
	return check(r)
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	Code              ID     `json:"code"`
	LegalName         string `json:"legal_name"`
	FantasyName       string `json:"fantasy_name"`
	TaxID             string `json:"cnpj_cpf"`
	StateRegistration string `json:"state_registration"`
	State             string `json:"state"`
	Neighborhood      string `json:"neighborhood"`
	Street            string `json:"address"`
	PostalCode        string `json:"cep"`
	CorporateNetwork  string `json:"corporate_network"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	PaymentMethod     string `json:"payment_method"`
}
