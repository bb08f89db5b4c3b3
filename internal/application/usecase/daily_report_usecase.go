package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

const (
	msgReportNotFound = "Relatório não encontrado."
	msgPlateNotFound  = "Veículo (placa) não encontrado."
	msgCreateFailed   = "Falha ao criar relatório diário."
	msgUpdateFailed   = "Falha ao atualizar relatório diário."
	msgEmptyGroup     = "Grupo de cliente sem produtos."
)

// DailyReportUseCase fluxo de expedição: alta, consulta, edición y baja de relatórios diarios.
type DailyReportUseCase struct {
	reports   repository.DailyReportRepository
	users     repository.UserRepository
	customers repository.CustomerRepository
	vehicles  repository.VehicleRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewDailyReportUseCase construye el caso de uso.
func NewDailyReportUseCase(
	reports repository.DailyReportRepository,
	users repository.UserRepository,
	customers repository.CustomerRepository,
	vehicles repository.VehicleRepository,
	log zerolog.Logger,
) *DailyReportUseCase {
	return &DailyReportUseCase{
		reports:   reports,
		users:     users,
		customers: customers,
		vehicles:  vehicles,
		log:       log,
		now:       time.Now,
	}
}

// references referencias a verificar; cero/vacío = no verificar.
type references struct {
	userID    int64
	customers []int64
	plate     string
}

// checkReferences consulta usuario, clientes y vehículo en paralelo y espera a todos.
// La primera referencia faltante termina la operación con NotFound.
func (uc *DailyReportUseCase) checkReferences(ctx context.Context, refs references) error {
	g, gctx := errgroup.WithContext(ctx)
	if refs.userID != 0 {
		g.Go(func() error {
			u, err := uc.users.GetByID(gctx, refs.userID)
			if err != nil {
				return err
			}
			if u == nil {
				return domain.NotFound("Usuário não encontrado.")
			}
			return nil
		})
	}
	for _, code := range refs.customers {
		code := code
		g.Go(func() error {
			c, err := uc.customers.GetByCode(gctx, code)
			if err != nil {
				return err
			}
			if c == nil {
				return domain.NotFound(fmt.Sprintf("Cliente não encontrado: código %d.", code))
			}
			return nil
		})
	}
	if refs.plate != "" {
		g.Go(func() error {
			v, err := uc.vehicles.GetByPlate(gctx, refs.plate)
			if err != nil {
				return err
			}
			if v == nil {
				return domain.NotFound(msgPlateNotFound)
			}
			return nil
		})
	}
	return g.Wait()
}

// Create registra un relatório por cliente (uno solo en el payload clásico,
// uno por grupo con customerGroups), todos en una transacción.
func (uc *DailyReportUseCase) Create(ctx context.Context, in dto.CreateDailyReportRequest) (*dto.CreateDailyReportResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	plate := in.Plate()

	var reports []*entity.DailyShipmentReport
	if len(in.CustomerGroups) > 0 {
		for _, g := range in.CustomerGroups {
			if len(g.Items) == 0 {
				return nil, domain.BadRequest(msgEmptyGroup)
			}
			reports = append(reports, uc.groupReport(in, g, plate))
		}
	} else {
		reports = append(reports, uc.singleReport(in, plate))
	}

	refs := references{userID: in.UserID.Int64(), plate: plate}
	seen := make(map[int64]struct{}, len(reports))
	for _, r := range reports {
		if _, ok := seen[r.CustomerCode]; !ok {
			seen[r.CustomerCode] = struct{}{}
			refs.customers = append(refs.customers, r.CustomerCode)
		}
	}
	if err := uc.checkReferences(ctx, refs); err != nil {
		return nil, uc.boundary(err, msgCreateFailed)
	}

	if err := uc.reports.CreateMany(ctx, reports); err != nil {
		return nil, uc.boundary(err, msgCreateFailed)
	}

	out := &dto.CreateDailyReportResponse{Message: "Relatório diário criado com sucesso!"}
	for _, r := range reports {
		out.IDs = append(out.IDs, dto.ID(r.ID))
	}
	return out, nil
}

// base campos comunes; FillingDate siempre la fija el servidor.
func (uc *DailyReportUseCase) base(in dto.CreateDailyReportRequest, plate string) *entity.DailyShipmentReport {
	r := &entity.DailyShipmentReport{
		InvoiceNumber:            in.InvoiceNumber.Int64(),
		ProductionDate:           in.ProductionDate.Ptr(),
		VehicleTemperature:       in.VehicleTemperature,
		HasGoodSanitaryCondition: in.HasGoodSanitaryCondition,
		Driver:                   strings.TrimSpace(in.Driver),
		UserID:                   in.UserID.Int64(),
		ProductTemperature:       decimal.Zero,
		FillingDate:              uc.now(),
		ShipmentDate:             in.ShipmentDate.Ptr(),
	}
	if in.ProductTemperature != nil {
		r.ProductTemperature = *in.ProductTemperature
	}
	if plate != "" {
		r.DeliverVehicle = &plate
	}
	return r
}

func (uc *DailyReportUseCase) singleReport(in dto.CreateDailyReportRequest, plate string) *entity.DailyShipmentReport {
	r := uc.base(in, plate)
	r.CustomerCode = in.CustomerCode.Int64()
	r.Products = sanitizeItems(in.Products)
	r.Quantity = entity.TotalQuantity(r.Products)
	if in.Quantity != nil && len(r.Products) == 0 {
		r.Quantity = *in.Quantity
	}
	applyInspection(r, in.SifOrSisbi, in.HasSifOrSisbi)
	return r
}

// groupReport un relatório por cliente: producción = fecha más antigua de los ítems,
// temperatura del producto = mínima informada, inspección = la del primer ítem.
func (uc *DailyReportUseCase) groupReport(in dto.CreateDailyReportRequest, g dto.CustomerGroupRequest, plate string) *entity.DailyShipmentReport {
	r := uc.base(in, plate)
	r.CustomerCode = g.CustomerCode.Int64()
	r.Products = sanitizeItems(g.Items)
	r.Quantity = entity.TotalQuantity(r.Products)

	var minTemp *decimal.Decimal
	for i := range r.Products {
		it := r.Products[i]
		if it.ProductionDate != nil && (r.ProductionDate == nil || it.ProductionDate.Before(*r.ProductionDate)) {
			d := *it.ProductionDate
			r.ProductionDate = &d
		}
		if it.ProductTemperature != nil && (minTemp == nil || it.ProductTemperature.LessThan(*minTemp)) {
			t := *it.ProductTemperature
			minTemp = &t
		}
	}
	if minTemp != nil {
		r.ProductTemperature = *minTemp
	}
	inspection := g.Items[0].SifOrSisbi
	if inspection == nil {
		inspection = in.SifOrSisbi
	}
	applyInspection(r, inspection, in.HasSifOrSisbi)
	return r
}

func sanitizeItems(items []dto.ProductItemRequest) []entity.ProductItem {
	out := make([]entity.ProductItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.Entity())
	}
	return out
}

// applyInspection "NA" o ausente se guarda como NULL.
func applyInspection(r *entity.DailyShipmentReport, sif *string, has *bool) {
	r.SifOrSisbi = nil
	if sif != nil && *sif != "" && *sif != entity.InspectionNA {
		v := *sif
		r.SifOrSisbi = &v
	}
	r.HasSifOrSisbi = r.SifOrSisbi != nil
	if has != nil {
		r.HasSifOrSisbi = *has
	}
}

// boundary único punto donde errores de escritura se vuelven mensajes para el cliente:
// errores de dominio pasan tal cual, fallas del almacenamiento exponen su detalle como
// BadRequest y el resto se registra y se reemplaza por un mensaje genérico.
func (uc *DailyReportUseCase) boundary(err error, generic string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	if detail, ok := domain.StoreDetail(err); ok {
		return domain.Wrap(domain.ErrBadRequest, detail, err)
	}
	uc.log.Error().Err(err).Msg("relatório diário: erro inesperado")
	return domain.Wrap(domain.ErrBadRequest, generic, err)
}

// GetByID obtiene un relatório.
func (uc *DailyReportUseCase) GetByID(ctx context.Context, id int64) (*dto.DailyReportResponse, error) {
	r, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgReportNotFound)
	}
	return toDailyReportResponse(r), nil
}

// List lista relatórios por id descendente.
func (uc *DailyReportUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.Page[dto.DailyReportResponse], error) {
	in, page := toRepoPage(in)
	list, total, err := uc.reports.List(ctx, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DailyReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toDailyReportResponse(r))
	}
	out := dto.NewPage(items, in, total)
	return &out, nil
}

// Update aplica sólo los campos informados. Las referencias que cambian se vuelven
// a verificar; FillingDate nunca se modifica.
func (uc *DailyReportUseCase) Update(ctx context.Context, id int64, in dto.UpdateDailyReportRequest) (*dto.UpdatedResponse[dto.DailyReportResponse], error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgReportNotFound)
	}

	var refs references
	if in.UserID != nil && in.UserID.Int64() != r.UserID {
		refs.userID = in.UserID.Int64()
		r.UserID = refs.userID
	}
	if in.CustomerCode != nil && in.CustomerCode.Int64() != r.CustomerCode {
		refs.customers = []int64{in.CustomerCode.Int64()}
		r.CustomerCode = in.CustomerCode.Int64()
	}
	if in.DeliverVehicle != nil {
		plate := dto.NormalizePlate(*in.DeliverVehicle)
		switch {
		case plate == "":
			r.DeliverVehicle = nil
		case r.DeliverVehicle == nil || *r.DeliverVehicle != plate:
			refs.plate = plate
			r.DeliverVehicle = &plate
		}
	}
	if err := uc.checkReferences(ctx, refs); err != nil {
		return nil, uc.boundary(err, msgUpdateFailed)
	}

	if in.InvoiceNumber != nil {
		r.InvoiceNumber = in.InvoiceNumber.Int64()
	}
	if in.ProductionDate != nil {
		r.ProductionDate = in.ProductionDate.Ptr()
	}
	if in.VehicleTemperature != nil {
		r.VehicleTemperature = *in.VehicleTemperature
	}
	if in.HasGoodSanitaryCondition != nil {
		r.HasGoodSanitaryCondition = *in.HasGoodSanitaryCondition
	}
	if in.Driver != nil {
		r.Driver = strings.TrimSpace(*in.Driver)
	}
	if in.Products != nil {
		r.Products = sanitizeItems(in.Products)
		r.Quantity = entity.TotalQuantity(r.Products)
	}
	if in.SifOrSisbi != nil {
		applyInspection(r, in.SifOrSisbi, in.HasSifOrSisbi)
	} else if in.HasSifOrSisbi != nil {
		r.HasSifOrSisbi = *in.HasSifOrSisbi
	}
	if in.ProductTemperature != nil {
		r.ProductTemperature = *in.ProductTemperature
	}
	if in.ShipmentDate != nil {
		r.ShipmentDate = in.ShipmentDate.Ptr()
	}

	if err := uc.reports.Update(ctx, r); err != nil {
		return nil, uc.boundary(err, msgUpdateFailed)
	}
	return &dto.UpdatedResponse[dto.DailyReportResponse]{
		Data:    *toDailyReportResponse(r),
		Message: "Relatório atualizado com sucesso!",
	}, nil
}

// Delete elimina un relatório.
func (uc *DailyReportUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	r, err := uc.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgReportNotFound)
	}
	if err := uc.reports.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Relatório deletado com sucesso!"}, nil
}

func toDailyReportResponse(r *entity.DailyShipmentReport) *dto.DailyReportResponse {
	items := make([]dto.ProductItemResponse, 0, len(r.Products))
	for _, it := range r.Products {
		items = append(items, dto.ProductItemResponse{
			Code:               dto.ID(it.Code),
			Quantity:           it.Quantity,
			Description:        it.Description,
			SifOrSisbi:         it.SifOrSisbi,
			ProductTemperature: it.ProductTemperature,
			ProductionDate:     it.ProductionDate,
		})
	}
	return &dto.DailyReportResponse{
		ID:                       dto.ID(r.ID),
		InvoiceNumber:            dto.ID(r.InvoiceNumber),
		Quantity:                 r.Quantity,
		ProductionDate:           r.ProductionDate,
		VehicleTemperature:       r.VehicleTemperature,
		HasGoodSanitaryCondition: r.HasGoodSanitaryCondition,
		Driver:                   r.Driver,
		UserID:                   dto.ID(r.UserID),
		Products:                 items,
		CustomerCode:             dto.ID(r.CustomerCode),
		HasSifOrSisbi:            r.HasSifOrSisbi,
		SifOrSisbi:               r.SifOrSisbi,
		ProductTemperature:       r.ProductTemperature,
		FillingDate:              r.FillingDate,
		ShipmentDate:             r.ShipmentDate,
		DeliverVehicle:           r.DeliverVehicle,
	}
}
