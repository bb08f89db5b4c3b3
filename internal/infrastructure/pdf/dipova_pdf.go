// Package pdf genera el relatório de comercialização DIPOVA en PDF (A4 apaisado).
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  Relatório de Comercialização de produtos                    │
//	│  ESTABELECIMENTO / Nº REG. DIPOVA / ENDEREÇO / TEL / RESP.   │
//	│  ──────────────────────────────────────────────────────────  │
//	│  Produto | Produção | Expedição | Quant. | Destino | Temp... │
//	│  ──────────────────────────────────────────────────────────  │
//	│                                        TOTAL: 1.234,50       │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/expedicao-api/internal/application/reporting"
	"github.com/jhoicas/expedicao-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Writer ────────────────────────────────────────────────────────────────────

var _ reporting.DipovaExporter = (*DipovaWriter)(nil)

// DipovaWriter implementa reporting.DipovaExporter usando Maroto v2.
type DipovaWriter struct {
	printer *message.Printer
}

// NewDipovaWriter construye el writer; los números salen con separadores pt-BR.
func NewDipovaWriter() *DipovaWriter {
	return &DipovaWriter{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

func (w *DipovaWriter) Format() string      { return "pdf" }
func (w *DipovaWriter) ContentType() string { return "application/pdf" }

// Export genera el PDF y devuelve sus bytes.
func (w *DipovaWriter) Export(_ context.Context, h reporting.Header, d report.Dipova) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Relatório de Comercialização "+d.Month, true).
		WithAuthor(h.Establishment, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(d))
	m.AddRows(establishmentRows(h, d)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(w.itemRows(d.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(w.totalRow(d.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(d report.Dipova) core.Row {
	return row.New(12).Add(
		col.New(9).Add(text.New("Relatório de Comercialização de produtos", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		})),
		col.New(3).Add(text.New("Mês: "+nonEmpty(d.Month, "—"), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
	)
}

func establishmentRows(h reporting.Header, d report.Dipova) []core.Row {
	pair := func(left, right string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(5).Add(
			col.New(8).Add(text.New(left, props.Text{Size: 8, Style: style, Top: 1})),
			col.New(4).Add(text.New(right, props.Text{Size: 8, Style: style, Top: 1, Color: colorGray})),
		)
	}
	return []core.Row{
		pair("ESTABELECIMENTO: "+nonEmpty(h.Establishment, "—"), "Nº REG. DIPOVA: "+nonEmpty(h.Registration, "—"), true),
		pair("ENDEREÇO: "+nonEmpty(h.Address, "—"), "TEL/FAX: "+nonEmpty(h.Phone, "—"), false),
		pair("ANO DE REFERÊNCIA: "+nonEmpty(d.Year, "—"), "RESP. PREENCHIMENTO: "+nonEmpty(h.Responsible, "—"), false),
	}
}

// tableHeaderRow cabecera de la tabla con texto blanco sobre fondo primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 3, align.Left),
		h("Produção/lote", 1, align.Center),
		h("Expedição", 1, align.Center),
		h("Quant.", 1, align.Right),
		h("Destino", 3, align.Left),
		h("Temp.", 1, align.Center),
		h("Entregador/caminhão", 2, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (w *DipovaWriter) itemRows(items []report.DipovaItem) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		out = append(out, row.New(6).Add(
			col.New(3).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.ProductionDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(it.ExpeditionDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(w.number(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(it.Destination, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.Temperature.String()+" °C", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(it.Driver+" / "+it.Vehicle, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return out
}

func (w *DipovaWriter) totalRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(4),
		col.New(1).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
		col.New(1).Add(text.New(w.number(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1,
		})),
		col.New(6),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// number 1234.5 → "1.234,50".
func (w *DipovaWriter) number(d decimal.Decimal) string {
	return w.printer.Sprintf("%.2f", d.InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
