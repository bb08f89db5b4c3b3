package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

const (
	msgMonthlyNotFound = "Relatório mensal não encontrado."
	msgMonthlyBadRefs  = "Produto ou cliente não encontrado."
	defaultDestination = "N/A"
	defaultDeliverer   = "Próprio"
)

// MonthlyReportUseCase CRUD de los registros mensuales que alimentan el dashboard.
type MonthlyReportUseCase struct {
	repo repository.MonthlyReportRepository
	now  func() time.Time
}

// NewMonthlyReportUseCase construye el caso de uso.
func NewMonthlyReportUseCase(repo repository.MonthlyReportRepository) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{repo: repo, now: time.Now}
}

// Create registra un consolidado; destino, entregador y fechas tienen valores por defecto.
func (uc *MonthlyReportUseCase) Create(ctx context.Context, in dto.CreateMonthlyReportRequest) (*dto.MonthlyReportResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := uc.now()
	r := &entity.MonthlyShipmentReport{
		Quantity:       in.Quantity,
		Destination:    defaultDestination,
		Temperature:    in.Temperature,
		Deliverer:      defaultDeliverer,
		ProductionDate: now,
		ShipmentDate:   now,
		ProductID:      in.ProductID.Int64(),
		CustomerID:     in.CustomerID.Int64(),
	}
	if in.Destination != nil && strings.TrimSpace(*in.Destination) != "" {
		r.Destination = strings.TrimSpace(*in.Destination)
	}
	if in.Deliverer != nil && strings.TrimSpace(*in.Deliverer) != "" {
		r.Deliverer = strings.TrimSpace(*in.Deliverer)
	}
	if t := in.ProductionDate.Ptr(); t != nil {
		r.ProductionDate = *t
	}
	if t := in.ShipmentDate.Ptr(); t != nil {
		r.ShipmentDate = *t
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, monthlyStoreError(err)
	}
	return toMonthlyReportResponse(r), nil
}

// GetByID obtiene un registro mensual.
func (uc *MonthlyReportUseCase) GetByID(ctx context.Context, id int64) (*dto.MonthlyReportResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgMonthlyNotFound)
	}
	return toMonthlyReportResponse(r), nil
}

// List lista por id descendente.
func (uc *MonthlyReportUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.Page[dto.MonthlyReportResponse], error) {
	in, page := toRepoPage(in)
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MonthlyReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toMonthlyReportResponse(r))
	}
	out := dto.NewPage(items, in, total)
	return &out, nil
}

// Update aplica sólo los campos informados.
func (uc *MonthlyReportUseCase) Update(ctx context.Context, id int64, in dto.UpdateMonthlyReportRequest) (*dto.UpdatedResponse[dto.MonthlyReportResponse], error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgMonthlyNotFound)
	}
	if in.Quantity != nil {
		r.Quantity = *in.Quantity
	}
	if in.Temperature != nil {
		r.Temperature = *in.Temperature
	}
	setString(&r.Destination, in.Destination)
	setString(&r.Deliverer, in.Deliverer)
	if t := in.ProductionDate.Ptr(); t != nil {
		r.ProductionDate = *t
	}
	if t := in.ShipmentDate.Ptr(); t != nil {
		r.ShipmentDate = *t
	}
	if in.ProductID != nil {
		r.ProductID = in.ProductID.Int64()
	}
	if in.CustomerID != nil {
		r.CustomerID = in.CustomerID.Int64()
	}
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, monthlyStoreError(err)
	}
	return &dto.UpdatedResponse[dto.MonthlyReportResponse]{
		Data:    *toMonthlyReportResponse(r),
		Message: "Relatório mensal atualizado com sucesso!",
	}, nil
}

// Delete elimina un registro mensual.
func (uc *MonthlyReportUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgMonthlyNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Relatório mensal deletado com sucesso!"}, nil
}

// monthlyStoreError una FK violada al escribir significa producto o cliente inexistente.
func monthlyStoreError(err error) error {
	if errors.Is(err, domain.ErrReferenced) {
		return domain.Wrap(domain.ErrNotFound, msgMonthlyBadRefs, err)
	}
	return err
}

func toMonthlyReportResponse(r *entity.MonthlyShipmentReport) *dto.MonthlyReportResponse {
	return &dto.MonthlyReportResponse{
		ID:             dto.ID(r.ID),
		Quantity:       r.Quantity,
		Destination:    r.Destination,
		Temperature:    r.Temperature,
		Deliverer:      r.Deliverer,
		ProductionDate: r.ProductionDate,
		ShipmentDate:   r.ShipmentDate,
		ProductID:      dto.ID(r.ProductID),
		CustomerID:     dto.ID(r.CustomerID),
	}
}
