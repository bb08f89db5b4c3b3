package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// EmptyMark valor de entregador/caminhão cuando no fue informado.
const EmptyMark = "—"

// DipovaItem línea consolidada del relatório de comercialização.
type DipovaItem struct {
	ProductCode    int64
	ProductName    string
	Destination    string // razão social del cliente
	ProductionDate string // DD/MM/YYYY
	ExpeditionDate string // DD/MM/YYYY
	Quantity       decimal.Decimal
	Temperature    decimal.Decimal
	Driver         string
	Vehicle        string
}

// Dipova relatório de comercialização de un mes.
type Dipova struct {
	Month string
	Year  string
	Items []DipovaItem
	Total decimal.Decimal
}

// BuildDipova consolida las líneas de producto del mes indicado.
//
// Cantidad efectiva = cantidad × peso del producto; líneas con resultado <= 0 se descartan.
// Se agrupa por (producto, destino, producción, expedición, entregador, caminhão): la
// cantidad se suma y la temperatura queda con el último valor visto.
// El orden es nombre del producto y después destino, con collation pt-BR.
func BuildDipova(rows []Row, month string) Dipova {
	out := Dipova{Month: month, Total: decimal.Zero}
	if _, _, ok := ParseMonthKey(month); ok {
		out.Year = month[strings.LastIndex(month, "-")+1:]
	}

	index := make(map[string]int)
	for _, r := range rows {
		if r.Month != month {
			continue
		}
		expedition := FormatDate(r.Date)
		driver := r.Driver
		if driver == "" {
			driver = EmptyMark
		}
		vehicle := r.DeliverVehicle
		if vehicle == "" {
			vehicle = EmptyMark
		}
		for _, p := range r.Products {
			qty := p.Quantity.Mul(p.Weight)
			if !qty.IsPositive() {
				continue
			}
			production := FormatDate(p.ProductionDate)
			key := strings.Join([]string{
				strconv.FormatInt(p.Code, 10), r.ClientName, production, expedition, driver, vehicle,
			}, "|")
			if i, ok := index[key]; ok {
				out.Items[i].Quantity = out.Items[i].Quantity.Add(qty)
				out.Items[i].Temperature = r.ProductTemperature
				continue
			}
			index[key] = len(out.Items)
			out.Items = append(out.Items, DipovaItem{
				ProductCode:    p.Code,
				ProductName:    p.Name,
				Destination:    r.ClientName,
				ProductionDate: production,
				ExpeditionDate: expedition,
				Quantity:       qty,
				Temperature:    r.ProductTemperature,
				Driver:         driver,
				Vehicle:        vehicle,
			})
		}
	}

	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(out.Items, func(i, j int) bool {
		a, b := out.Items[i], out.Items[j]
		if c := col.CompareString(a.ProductName, b.ProductName); c != 0 {
			return c < 0
		}
		return col.CompareString(a.Destination, b.Destination) < 0
	})

	for _, it := range out.Items {
		out.Total = out.Total.Add(it.Quantity)
	}
	return out
}
