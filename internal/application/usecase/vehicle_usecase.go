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
	msgPlateExists     = "Já existe um veículo com essa placa."
	msgVehicleNotFound = "Veículo não encontrado."
)

// VehicleUseCase casos de uso CRUD para vehículos.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create cadastra un vehículo; la placa es única.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.CreateVehicleRequest) (*dto.MessageResponse, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByPlate(ctx, in.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict(msgPlateExists)
	}
	vehicle := &entity.Vehicle{
		Model:       in.Model,
		Plate:       in.Plate,
		Phone:       in.Phone,
		MaximumLoad: in.MaximumLoad,
		Description: in.Description,
	}
	if err := uc.repo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Wrap(domain.ErrConflict, msgPlateExists, err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Veículo cadastrado com sucesso!"}, nil
}

// GetByID obtiene un vehículo.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id int64) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.NotFound(msgVehicleNotFound)
	}
	return toVehicleResponse(vehicle), nil
}

// List lista vehículos por id descendente.
func (uc *VehicleUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.Page[dto.VehicleResponse], error) {
	in, page := toRepoPage(in)
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	out := dto.NewPage(items, in, total)
	return &out, nil
}

// Update aplica sólo los campos informados. Cambiar la placa se propaga a los
// relatórios por ON UPDATE CASCADE.
func (uc *VehicleUseCase) Update(ctx context.Context, id int64, in dto.UpdateVehicleRequest) (*dto.UpdatedResponse[dto.VehicleResponse], error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.NotFound(msgVehicleNotFound)
	}
	setString(&vehicle.Model, in.Model)
	setString(&vehicle.Plate, in.Plate)
	setString(&vehicle.Phone, in.Phone)
	setString(&vehicle.Description, in.Description)
	if in.MaximumLoad != nil {
		vehicle.MaximumLoad = *in.MaximumLoad
	}
	if err := uc.repo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Wrap(domain.ErrConflict, msgPlateExists, err)
		}
		return nil, err
	}
	return &dto.UpdatedResponse[dto.VehicleResponse]{
		Data:    *toVehicleResponse(vehicle),
		Message: "Veículo atualizado com sucesso!",
	}, nil
}

// Delete elimina un vehículo; Conflict si algún relatório usa la placa.
func (uc *VehicleUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.NotFound(msgVehicleNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReferenced) {
			return nil, domain.Wrap(domain.ErrConflict, "Não é possível deletar veículos vinculados a relatórios.", err)
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "Veículo deletado com sucesso!"}, nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:          dto.ID(v.ID),
		Model:       v.Model,
		Plate:       v.Plate,
		Phone:       v.Phone,
		MaximumLoad: v.MaximumLoad,
		Description: v.Description,
	}
}
