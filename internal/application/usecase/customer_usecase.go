package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

const (
	msgCustomerExists     = "Esse cliente já existe."
	msgCustomerNotFound   = "Cliente não encontrado."
	msgCustomerReferenced = "Nao é possível deletar clientes vinculados a relatórios."
)

// CustomerUseCase casos de uso CRUD para clientes. Code es la clave natural.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cadastra un cliente; Conflict si ya existe el código o el CNPJ/CPF.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.MessageResponse, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCodeOrTaxID(ctx, in.Code.Int64(), in.TaxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict(msgCustomerExists)
	}
	customer := &entity.Customer{
		Code:              in.Code.Int64(),
		LegalName:         in.LegalName,
		FantasyName:       in.FantasyName,
		TaxID:             in.TaxID,
		StateRegistration: in.StateRegistration,
		State:             in.State,
		Neighborhood:      in.Neighborhood,
		Street:            in.Street,
		PostalCode:        in.PostalCode,
		CorporateNetwork:  in.CorporateNetwork,
		Email:             in.Email,
		Phone:             in.Phone,
		PaymentMethod:     in.PaymentMethod,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Wrap(domain.ErrConflict, msgCustomerExists, err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Cliente cadastrado com sucesso!"}, nil
}

// GetByCode obtiene un cliente por código.
func (uc *CustomerUseCase) GetByCode(ctx context.Context, code int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound(msgCustomerNotFound)
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes por código descendente.
func (uc *CustomerUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.Page[dto.CustomerResponse], error) {
	in, page := toRepoPage(in)
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	out := dto.NewPage(items, in, total)
	return &out, nil
}

// Update aplica sólo los campos informados.
func (uc *CustomerUseCase) Update(ctx context.Context, code int64, in dto.UpdateCustomerRequest) (*dto.UpdatedResponse[dto.CustomerResponse], error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound(msgCustomerNotFound)
	}
	setString(&customer.LegalName, in.LegalName)
	setString(&customer.FantasyName, in.FantasyName)
	setString(&customer.TaxID, in.TaxID)
	setString(&customer.StateRegistration, in.StateRegistration)
	if in.State != nil {
		customer.State = strings.ToUpper(strings.TrimSpace(*in.State))
	}
	setString(&customer.Neighborhood, in.Neighborhood)
	setString(&customer.Street, in.Street)
	setString(&customer.PostalCode, in.PostalCode)
	setString(&customer.CorporateNetwork, in.CorporateNetwork)
	setString(&customer.Email, in.Email)
	setString(&customer.Phone, in.Phone)
	setString(&customer.PaymentMethod, in.PaymentMethod)
	if err := uc.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Wrap(domain.ErrConflict, "CNPJ/CPF já cadastrado para outro cliente.", err)
		}
		return nil, err
	}
	return &dto.UpdatedResponse[dto.CustomerResponse]{
		Data:    *toCustomerResponse(customer),
		Message: "Cliente atualizado com sucesso!",
	}, nil
}

// Delete elimina un cliente; Conflict si algún relatório lo referencia.
func (uc *CustomerUseCase) Delete(ctx context.Context, code int64) (*dto.MessageResponse, error) {
	customer, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound(fmt.Sprintf("Cliente não encontrado: código %d.", code))
	}
	if err := uc.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return nil, domain.Wrap(domain.ErrConflict, msgCustomerReferenced, err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Cliente deletado com sucesso!"}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Code:              dto.ID(c.Code),
		LegalName:         c.LegalName,
		FantasyName:       c.FantasyName,
		TaxID:             c.TaxID,
		StateRegistration: c.StateRegistration,
		State:             c.State,
		Neighborhood:      c.Neighborhood,
		Street:            c.Street,
		PostalCode:        c.PostalCode,
		CorporateNetwork:  c.CorporateNetwork,
		Email:             c.Email,
		Phone:             c.Phone,
		PaymentMethod:     c.PaymentMethod,
	}
}
