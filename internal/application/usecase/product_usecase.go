package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

const (
	msgProductExists   = "Esse produto já existe."
	msgProductNotFound = "Produto não encontrado."
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra un producto; Conflict si el código ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.MessageResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code.Int64())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict(msgProductExists)
	}
	product := &entity.Product{
		Code:        in.Code.Int64(),
		Description: in.Description,
		Group:       in.Group,
		Company:     in.Company,
		Weight:      in.Weight,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Wrap(domain.ErrConflict, msgProductExists, err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Produto cadastrado com sucesso!"}, nil
}

// GetByCode obtiene un producto por código.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(msgProductNotFound)
	}
	return toProductResponse(product), nil
}

// List lista productos por código descendente.
func (uc *ProductUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.Page[dto.ProductResponse], error) {
	in, page := toRepoPage(in)
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	out := dto.NewPage(items, in, total)
	return &out, nil
}

// Update aplica sólo los campos informados.
func (uc *ProductUseCase) Update(ctx context.Context, code int64, in dto.UpdateProductRequest) (*dto.UpdatedResponse[dto.ProductResponse], error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(msgProductNotFound)
	}
	setString(&product.Description, in.Description)
	setString(&product.Group, in.Group)
	setString(&product.Company, in.Company)
	if in.Weight != nil {
		product.Weight = in.Weight
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return &dto.UpdatedResponse[dto.ProductResponse]{
		Data:    *toProductResponse(product),
		Message: "Produto atualizado com sucesso!",
	}, nil
}

// Delete elimina un producto; Conflict si un registro mensual lo referencia.
func (uc *ProductUseCase) Delete(ctx context.Context, code int64) (*dto.MessageResponse, error) {
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound(msgProductNotFound)
	}
	if err := uc.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return nil, domain.Wrap(domain.ErrConflict, "Não é possível deletar produtos vinculados a relatórios.", err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Produto deletado com sucesso!"}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Code:        dto.ID(p.Code),
		Description: p.Description,
		Group:       p.Group,
		Company:     p.Company,
		Weight:      p.Weight,
	}
}
