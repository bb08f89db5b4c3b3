package excel_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/expedicao-api/internal/application/reporting"
	"github.com/jhoicas/expedicao-api/internal/domain/report"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/excel"
)

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Fev-25", excel.SheetName("Fev-2025"))
	assert.Equal(t, "Relatorio", excel.SheetName(""))
}

func TestDipovaWriter_Layout(t *testing.T) {
	d := report.Dipova{
		Month: "Fev-2025",
		Year:  "2025",
		Items: []report.DipovaItem{
			{ProductCode: 1, ProductName: "Linguiça", Destination: "Mercado Central", ProductionDate: "01/02/2025",
				ExpeditionDate: "03/02/2025", Quantity: decimal.NewFromInt(6), Temperature: decimal.NewFromInt(-3),
				Driver: "João", Vehicle: "ABC1D23"},
		},
		Total: decimal.NewFromInt(6),
	}
	w := excel.NewDipovaWriter()
	assert.Equal(t, "xlsx", w.Format())

	body, err := w.Export(context.Background(), reporting.Header{Establishment: "Frigorífico", Registration: "442"}, d)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Fev-25"}, f.GetSheetList())
	get := func(c string) string {
		v, err := f.GetCellValue("Fev-25", c)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Relatório de Comercialização de produtos", get("A1"))
	assert.Equal(t, "ESTABELECIMENTO: Frigorífico", get("A2"))
	assert.Equal(t, "Nº REG. DIPOVA: 442", get("F2"))
	assert.Equal(t, "ANO DE REFERÊNCIA: 2025", get("A4"))
	assert.Equal(t, "Produto", get("A7"))
	assert.Equal(t, "Linguiça", get("A8"))
	assert.Equal(t, "Mercado Central", get("E8"))
	assert.Equal(t, "-3 °C", get("G8"))
	assert.Equal(t, "João / ABC1D23", get("H8"))
	assert.Equal(t, "TOTAL:", get("C9"))
}
