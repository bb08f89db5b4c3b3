// Package reporting arma la vista mensual de relatórios diarios y el relatório
// de comercialização DIPOVA (JSON, planilla y PDF) a partir de la misma agregación.
package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/report"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

// ReportingUseCase lee relatórios, clientes, productos y usuarios y delega la
// agregación en domain/report.
type ReportingUseCase struct {
	reports   repository.DailyReportRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	users     repository.UserRepository
	exporters map[string]DipovaExporter
	header    Header
	loc       *time.Location
	now       func() time.Time
}

// NewReportingUseCase construye el caso de uso. loc nil = UTC.
func NewReportingUseCase(
	reports repository.DailyReportRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	header Header,
	loc *time.Location,
	exporters ...DipovaExporter,
) *ReportingUseCase {
	if loc == nil {
		loc = time.UTC
	}
	uc := &ReportingUseCase{
		reports:   reports,
		customers: customers,
		products:  products,
		users:     users,
		exporters: make(map[string]DipovaExporter, len(exporters)),
		header:    header,
		loc:       loc,
		now:       time.Now,
	}
	for _, e := range exporters {
		uc.exporters[e.Format()] = e
	}
	return uc
}

// rows lee las cuatro fuentes en paralelo y las concilia.
func (uc *ReportingUseCase) rows(ctx context.Context) ([]report.Row, error) {
	var (
		reports   []*entity.DailyShipmentReport
		customers []*entity.Customer
		products  []*entity.Product
		users     []*entity.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reports, err = uc.reports.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		customers, err = uc.customers.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = uc.products.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = uc.users.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reporting: leer fuentes: %w", err)
	}
	return report.BuildRows(report.Sources{
		Reports:   reports,
		Customers: customers,
		Products:  products,
		Users:     users,
		Location:  uc.loc,
	}), nil
}

// Monthly relatórios conciliados y agrupados por mes (más reciente primero).
func (uc *ReportingUseCase) Monthly(ctx context.Context) ([]dto.MonthGroupDTO, error) {
	rows, err := uc.rows(ctx)
	if err != nil {
		return nil, err
	}
	groups := report.GroupByMonth(rows)
	out := make([]dto.MonthGroupDTO, 0, len(groups))
	for _, g := range groups {
		mg := dto.MonthGroupDTO{Month: g.Month, Rows: make([]dto.ReportRowDTO, 0, len(g.Rows))}
		for _, r := range g.Rows {
			mg.Rows = append(mg.Rows, toReportRowDTO(r))
		}
		out = append(out, mg)
	}
	return out, nil
}

// Months claves de mes disponibles.
func (uc *ReportingUseCase) Months(ctx context.Context) ([]string, error) {
	rows, err := uc.rows(ctx)
	if err != nil {
		return nil, err
	}
	months := report.Months(rows)
	if months == nil {
		months = []string{}
	}
	return months, nil
}

// Dipova agregado del mes; sin mes se usa el más reciente con datos.
func (uc *ReportingUseCase) Dipova(ctx context.Context, month string) (*dto.DipovaDTO, error) {
	d, err := uc.dipova(ctx, month)
	if err != nil {
		return nil, err
	}
	out := &dto.DipovaDTO{Month: d.Month, Year: d.Year, Total: d.Total, Items: make([]dto.DipovaItemDTO, 0, len(d.Items))}
	for _, it := range d.Items {
		out.Items = append(out.Items, dto.DipovaItemDTO{
			ProductCode:    dto.ID(it.ProductCode),
			ProductName:    it.ProductName,
			Destination:    it.Destination,
			ProductionDate: it.ProductionDate,
			ExpeditionDate: it.ExpeditionDate,
			Quantity:       it.Quantity,
			Temperature:    it.Temperature,
			Driver:         it.Driver,
			Vehicle:        it.Vehicle,
		})
	}
	return out, nil
}

// Export genera el archivo del relatório de comercialização en el formato pedido.
func (uc *ReportingUseCase) Export(ctx context.Context, month, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "xlsx"
	}
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, domain.BadRequest(fmt.Sprintf("Formato não suportado: %s.", format))
	}
	d, err := uc.dipova(ctx, month)
	if err != nil {
		return nil, err
	}
	body, err := exporter.Export(ctx, uc.header, d)
	if err != nil {
		return nil, fmt.Errorf("reporting: exportar %s: %w", format, err)
	}
	return &ExportFile{
		Name:        fmt.Sprintf("Relatorio_Comercializacao_%s.%s", d.Year, format),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}

func (uc *ReportingUseCase) dipova(ctx context.Context, month string) (report.Dipova, error) {
	month = strings.TrimSpace(month)
	if month != "" {
		y, m, ok := report.ParseMonthKey(month)
		if !ok {
			return report.Dipova{}, domain.BadRequest("Mês inválido; use o formato Mon-YYYY (ex.: Fev-2025).")
		}
		month = report.MonthKeyOf(time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC))
	}
	rows, err := uc.rows(ctx)
	if err != nil {
		return report.Dipova{}, err
	}
	if month == "" {
		month = report.MonthKeyOf(uc.now().In(uc.loc))
		for _, k := range report.Months(rows) {
			if _, _, ok := report.ParseMonthKey(k); ok {
				month = k
				break
			}
		}
	}
	return report.BuildDipova(rows, month), nil
}

func toReportRowDTO(r report.Row) dto.ReportRowDTO {
	out := dto.ReportRowDTO{
		ID:                       dto.ID(r.ReportID),
		InvoiceNumber:            dto.ID(r.InvoiceNumber),
		CustomerCode:             dto.ID(r.CustomerCode),
		ClientName:               r.ClientName,
		Destination:              r.Destination,
		UserName:                 r.UserName,
		Driver:                   r.Driver,
		DeliverVehicle:           r.DeliverVehicle,
		HasGoodSanitaryCondition: r.HasGoodSanitaryCondition,
		VehicleTemperature:       r.VehicleTemperature,
		ProductTemperature:       r.ProductTemperature,
		Date:                     r.Date,
		DisplayDate:              report.DayMonth(report.FormatDate(r.Date)),
		Products:                 make([]dto.ReportProductDTO, 0, len(r.Products)),
	}
	for _, p := range r.Products {
		out.Products = append(out.Products, dto.ReportProductDTO{
			Code:           dto.ID(p.Code),
			Name:           p.Name,
			Quantity:       p.Quantity,
			ProductionDate: p.ProductionDate,
			SifOrSisbi:     p.SifOrSisbi,
		})
	}
	return out
}
