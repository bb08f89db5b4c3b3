package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
)

// Sources datos crudos que se concilian en filas de reporte.
type Sources struct {
	Reports   []*entity.DailyShipmentReport
	Customers []*entity.Customer
	Products  []*entity.Product
	Users     []*entity.User
	// Location zona en la que se interpretan los timestamps; nil = UTC.
	Location *time.Location
}

// ProductLine línea de producto ya conciliada con el catálogo.
type ProductLine struct {
	Code               int64
	Name               string
	Quantity           decimal.Decimal
	Weight             decimal.Decimal // multiplicador efectivo; 1 si el producto no tiene peso
	SifOrSisbi         string
	ProductTemperature *decimal.Decimal
	ProductionDate     string // YYYY-MM-DD o N/A
}

// Row relatório diario listo para mostrar o exportar.
type Row struct {
	ReportID                 int64
	InvoiceNumber            int64
	CustomerCode             int64
	ClientName               string
	Destination              string // UF del cliente
	UserID                   int64
	UserName                 string
	Driver                   string
	DeliverVehicle           string
	HasGoodSanitaryCondition bool
	VehicleTemperature       decimal.Decimal
	ProductTemperature       decimal.Decimal
	Date                     string // YYYY-MM-DD resuelto por FirstDate
	ShipmentDate             string // YYYY-MM-DD o N/A
	Month                    string
	Products                 []ProductLine
}

// Fallback devuelve el primer valor no vacío (tras recortar espacios) o N/A.
func Fallback(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return NotAvailable
}

// FirstDate devuelve el primer puntero no nulo y no cero, en orden.
func FirstDate(values ...*time.Time) *time.Time {
	for _, v := range values {
		if v != nil && !v.IsZero() {
			return v
		}
	}
	return nil
}

func isoDay(t *time.Time, loc *time.Location) string {
	if t == nil {
		return NotAvailable
	}
	return t.In(loc).Format("2006-01-02")
}

// BuildRows concilia relatórios con clientes, productos y usuarios.
// La fecha de la fila sigue FillingDate → ProductionDate → ShipmentDate.
func BuildRows(src Sources) []Row {
	loc := src.Location
	if loc == nil {
		loc = time.UTC
	}
	customers := make(map[int64]*entity.Customer, len(src.Customers))
	for _, c := range src.Customers {
		customers[c.Code] = c
	}
	products := make(map[int64]*entity.Product, len(src.Products))
	for _, p := range src.Products {
		products[p.Code] = p
	}
	users := make(map[int64]*entity.User, len(src.Users))
	for _, u := range src.Users {
		users[u.ID] = u
	}

	rows := make([]Row, 0, len(src.Reports))
	for _, r := range src.Reports {
		if r == nil {
			continue
		}
		filling := &r.FillingDate
		date := isoDay(FirstDate(filling, r.ProductionDate, r.ShipmentDate), loc)

		row := Row{
			ReportID:                 r.ID,
			InvoiceNumber:            r.InvoiceNumber,
			CustomerCode:             r.CustomerCode,
			ClientName:               NotAvailable,
			Destination:              NotAvailable,
			UserID:                   r.UserID,
			UserName:                 "—",
			Driver:                   strings.TrimSpace(r.Driver),
			HasGoodSanitaryCondition: r.HasGoodSanitaryCondition,
			VehicleTemperature:       r.VehicleTemperature,
			ProductTemperature:       r.ProductTemperature,
			Date:                     date,
			ShipmentDate:             isoDay(r.ShipmentDate, loc),
			Month:                    MonthKey(date),
		}
		if r.DeliverVehicle != nil {
			row.DeliverVehicle = strings.TrimSpace(*r.DeliverVehicle)
		}
		if c, ok := customers[r.CustomerCode]; ok {
			row.ClientName = Fallback(c.LegalName)
			row.Destination = Fallback(c.State)
		}
		if u, ok := users[r.UserID]; ok && strings.TrimSpace(u.Name) != "" {
			row.UserName = u.Name
		}

		row.Products = make([]ProductLine, 0, len(r.Products))
		for _, it := range r.Products {
			line := ProductLine{
				Code:               it.Code,
				Quantity:           it.Quantity,
				Weight:             decimal.NewFromInt(1),
				SifOrSisbi:         it.SifOrSisbi,
				ProductTemperature: it.ProductTemperature,
				ProductionDate:     isoDay(FirstDate(it.ProductionDate, r.ProductionDate, r.ShipmentDate), loc),
			}
			var catalogName string
			if p, ok := products[it.Code]; ok {
				catalogName = p.Description
				if p.Weight != nil && p.Weight.IsPositive() {
					line.Weight = *p.Weight
				}
			}
			line.Name = Fallback(catalogName, it.Description)
			row.Products = append(row.Products, line)
		}
		rows = append(rows, row)
	}
	return rows
}

// MonthGroup filas de un mes.
type MonthGroup struct {
	Month string
	Rows  []Row
}

// GroupByMonth agrupa por Row.Month, del mes más reciente al más antiguo.
// Dentro de cada mes se conserva el orden de entrada.
func GroupByMonth(rows []Row) []MonthGroup {
	index := make(map[string]int)
	var groups []MonthGroup
	for _, r := range rows {
		i, ok := index[r.Month]
		if !ok {
			i = len(groups)
			index[r.Month] = i
			groups = append(groups, MonthGroup{Month: r.Month})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Month
	}
	SortMonthKeys(keys)
	out := make([]MonthGroup, 0, len(groups))
	for _, k := range keys {
		out = append(out, groups[index[k]])
	}
	return out
}

// Months claves de mes presentes en las filas, ordenadas de más reciente a más antigua.
func Months(rows []Row) []string {
	groups := GroupByMonth(rows)
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Month
	}
	return out
}
