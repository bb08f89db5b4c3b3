// Package excel escribe el relatório de comercialização DIPOVA como planilla .xlsx.
package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/expedicao-api/internal/application/reporting"
	"github.com/jhoicas/expedicao-api/internal/domain/report"
)

// ContentType MIME de las planillas OOXML.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Fila de la cabecera de la tabla; encima van título y datos del establecimiento.
const tableHeaderRow = 7

// numFmtThousands id interno de excelize para "#,##0.00".
const numFmtThousands = 4

var _ reporting.DipovaExporter = (*DipovaWriter)(nil)

// DipovaWriter implementa reporting.DipovaExporter con excelize.
type DipovaWriter struct{}

// NewDipovaWriter construye el writer.
func NewDipovaWriter() *DipovaWriter { return &DipovaWriter{} }

func (w *DipovaWriter) Format() string      { return "xlsx" }
func (w *DipovaWriter) ContentType() string { return ContentType }

// SheetName "Fev-2025" → "Fev-25".
func SheetName(month string) string {
	parts := strings.Split(month, "-")
	if len(parts) == 2 && len(parts[1]) == 4 {
		return parts[0] + "-" + parts[1][2:]
	}
	if month == "" {
		return "Relatorio"
	}
	return month
}

// Export arma la planilla: título, cabeçalho del establecimiento, tabla y fila TOTAL.
func (w *DipovaWriter) Export(_ context.Context, h reporting.Header, d report.Dipova) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := SheetName(d.Month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: nombrar hoja: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	header := []struct {
		from, to, value string
		style           int
	}{
		{"A1", "H1", "Relatório de Comercialização de produtos", styles.title},
		{"A2", "E2", "ESTABELECIMENTO: " + h.Establishment, styles.boldSmall},
		{"F2", "H2", "Nº REG. DIPOVA: " + h.Registration, styles.boldSmall},
		{"A3", "E3", "ENDEREÇO: " + h.Address, styles.small},
		{"F3", "H3", "TEL/FAX: " + h.Phone, styles.small},
		{"A4", "C4", "ANO DE REFERÊNCIA: " + d.Year, styles.boldSmall},
		{"D4", "H4", "RESP. PREENCHIMENTO: " + h.Responsible, styles.small},
	}
	for _, c := range header {
		if err := f.MergeCell(sheet, c.from, c.to); err != nil {
			return nil, fmt.Errorf("excel: merge %s:%s: %w", c.from, c.to, err)
		}
		if err := f.SetCellValue(sheet, c.from, c.value); err != nil {
			return nil, fmt.Errorf("excel: celda %s: %w", c.from, err)
		}
		if err := f.SetCellStyle(sheet, c.from, c.to, c.style); err != nil {
			return nil, fmt.Errorf("excel: estilo %s: %w", c.from, err)
		}
	}

	columns := []any{
		"Produto", "Data de produção/lote", "Data da expedição", "Quant.",
		"Destino", "", "Temp.", "Entregador/caminhão",
	}
	if err := f.SetSheetRow(sheet, cell("A", tableHeaderRow), &columns); err != nil {
		return nil, fmt.Errorf("excel: cabecera de tabla: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell("A", tableHeaderRow), cell("H", tableHeaderRow), styles.tableHeader); err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	row := tableHeaderRow + 1
	for _, it := range d.Items {
		values := []any{
			it.ProductName,
			it.ProductionDate,
			it.ExpeditionDate,
			it.Quantity.InexactFloat64(),
			it.Destination,
			"",
			it.Temperature.String() + " °C",
			it.Driver + " / " + it.Vehicle,
		}
		if err := f.SetSheetRow(sheet, cell("A", row), &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", row, err)
		}
		if err := f.SetCellStyle(sheet, cell("D", row), cell("D", row), styles.quantity); err != nil {
			return nil, fmt.Errorf("excel: estilo fila %d: %w", row, err)
		}
		row++
	}

	total := []any{"", "", "TOTAL:", d.Total.InexactFloat64(), "", "", "", ""}
	if err := f.SetSheetRow(sheet, cell("A", row), &total); err != nil {
		return nil, fmt.Errorf("excel: fila total: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell("A", row), cell("H", row), styles.bold); err != nil {
		return nil, fmt.Errorf("excel: estilo total: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell("D", row), cell("D", row), styles.totalQuantity); err != nil {
		return nil, fmt.Errorf("excel: estilo total: %w", err)
	}

	for col, width := range map[string]float64{"A": 35, "B": 15, "C": 15, "D": 12, "E": 25, "G": 10, "H": 25} {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, fmt.Errorf("excel: ancho %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

type styleSet struct {
	title, bold, boldSmall, small, tableHeader, quantity, totalQuantity int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}, Alignment: &excelize.Alignment{Horizontal: "center"}}},
		{&s.bold, &excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&s.boldSmall, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 9}}},
		{&s.small, &excelize.Style{Font: &excelize.Font{Size: 9}}},
		{&s.tableHeader, &excelize.Style{
			Font:   &excelize.Font{Bold: true},
			Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
		}},
		{&s.quantity, &excelize.Style{NumFmt: numFmtThousands}},
		{&s.totalQuantity, &excelize.Style{NumFmt: numFmtThousands, Font: &excelize.Font{Bold: true}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, fmt.Errorf("excel: estilo: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
