package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/report"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptrTime(t time.Time) *time.Time { return &t }

func ptrStr(s string) *string { return &s }

func TestMonthKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-02-10", "Fev-2025"},
		{"2025-02-10T23:59:59-03:00", "Fev-2025"},
		{"2025-02-01T00:30:00Z", "Fev-2025"},
		{"2025-12-31 22:00:00", "Dez-2025"},
		{"10/03/2024", "Mar-2024"},
		{"2024-07-15garbage", "Jul-2024"},
		{"", "N/A"},
		{"ontem", "N/A"},
		{"2025-13-01", "N/A"},
		{"31/02/2025", "N/A"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, report.MonthKey(tc.in))
		})
	}
}

func TestMonthKey_MismaFechaDistintaHora(t *testing.T) {
	// Un timestamp de medianoche con offset no debe saltar al mes anterior.
	assert.Equal(t, report.MonthKey("2025-03-01T00:00:00-03:00"), report.MonthKey("2025-03-01T23:59:59-03:00"))
	assert.Equal(t, "Mar-2025", report.MonthKey("2025-03-01T00:00:00-03:00"))
}

func TestSortMonthKeys_DescendenteYNAAlFinal(t *testing.T) {
	keys := []string{"Jan-2025", "N/A", "Dez-2024", "Mar-2025", "Fev-2024"}
	report.SortMonthKeys(keys)
	assert.Equal(t, []string{"Mar-2025", "Jan-2025", "Dez-2024", "Fev-2024", "N/A"}, keys)
}

func TestParseMonthKey(t *testing.T) {
	y, m, ok := report.ParseMonthKey("set-2023")
	require.True(t, ok)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 9, m)

	_, _, ok = report.ParseMonthKey("N/A")
	assert.False(t, ok)
	_, _, ok = report.ParseMonthKey("Foo-2023")
	assert.False(t, ok)
}

func TestFormatDateYDayMonth(t *testing.T) {
	assert.Equal(t, "05/02/2025", report.FormatDate("2025-02-05"))
	assert.Equal(t, "05/02/2025", report.FormatDate("05/02/2025"))
	assert.Equal(t, "N/A", report.FormatDate("x"))
	assert.Equal(t, "05/02", report.DayMonth("05/02/2025"))
	assert.Equal(t, "N/A", report.DayMonth("N/A"))
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "Queijo", report.Fallback("Queijo", "Leite"), "primer nivel")
	assert.Equal(t, "Leite", report.Fallback("  ", "Leite"), "segundo nivel")
	assert.Equal(t, "N/A", report.Fallback("", " "), "sin valores")
	assert.Equal(t, "N/A", report.Fallback())
}

func TestFirstDate(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	c := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var zero time.Time

	assert.Equal(t, a, *report.FirstDate(&a, &b, &c))
	assert.Equal(t, b, *report.FirstDate(&zero, &b, &c))
	assert.Equal(t, c, *report.FirstDate(nil, nil, &c))
	assert.Nil(t, report.FirstDate(nil, &zero))
}

func fixtureSources() report.Sources {
	weight := dec("2")
	return report.Sources{
		Customers: []*entity.Customer{
			{Code: 10, LegalName: "Mercado Bom Preço LTDA", State: "DF"},
			{Code: 20, LegalName: "Ágape Alimentos", State: ""},
		},
		Products: []*entity.Product{
			{Code: 1, Description: "Queijo Minas", Weight: &weight},
			{Code: 2, Description: "Iogurte"},
		},
		Users: []*entity.User{{ID: 7, Name: "Maria Souza"}},
	}
}

func TestBuildRows_ResuelveNombresYFechas(t *testing.T) {
	src := fixtureSources()
	src.Reports = []*entity.DailyShipmentReport{{
		ID:            1,
		InvoiceNumber: 555,
		CustomerCode:  10,
		UserID:        7,
		FillingDate:   time.Date(2025, 2, 10, 14, 0, 0, 0, time.UTC),
		Products: []entity.ProductItem{
			{Code: 1, Quantity: dec("3")},
			{Code: 99, Quantity: dec("1"), Description: "Manteiga avulsa"},
			{Code: 98, Quantity: dec("1")},
		},
	}, {
		ID:             2,
		CustomerCode:   404,
		UserID:         8,
		ProductionDate: ptrTime(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
	}}

	rows := report.BuildRows(src)
	require.Len(t, rows, 2)

	r := rows[0]
	assert.Equal(t, "Mercado Bom Preço LTDA", r.ClientName)
	assert.Equal(t, "DF", r.Destination)
	assert.Equal(t, "Maria Souza", r.UserName)
	assert.Equal(t, "2025-02-10", r.Date)
	assert.Equal(t, "Fev-2025", r.Month)
	require.Len(t, r.Products, 3)
	assert.Equal(t, "Queijo Minas", r.Products[0].Name)
	assert.True(t, dec("2").Equal(r.Products[0].Weight))
	assert.Equal(t, "Manteiga avulsa", r.Products[1].Name)
	assert.True(t, dec("1").Equal(r.Products[1].Weight))
	assert.Equal(t, "N/A", r.Products[2].Name)

	orphan := rows[1]
	assert.Equal(t, "N/A", orphan.ClientName)
	assert.Equal(t, "N/A", orphan.Destination)
	assert.Equal(t, "—", orphan.UserName)
	assert.Equal(t, "2025-01-20", orphan.Date, "FillingDate cero cae a ProductionDate")
}

func TestBuildRows_UsaZonaConfigurada(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	src := fixtureSources()
	src.Location = loc
	src.Reports = []*entity.DailyShipmentReport{{
		CustomerCode: 10,
		FillingDate:  time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC),
	}}
	rows := report.BuildRows(src)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-02-28", rows[0].Date)
	assert.Equal(t, "Fev-2025", rows[0].Month)
}

func TestGroupByMonth(t *testing.T) {
	rows := []report.Row{
		{ReportID: 1, Month: "Jan-2025"},
		{ReportID: 2, Month: "Mar-2025"},
		{ReportID: 3, Month: "N/A"},
		{ReportID: 4, Month: "Jan-2025"},
	}
	groups := report.GroupByMonth(rows)
	require.Len(t, groups, 3)
	assert.Equal(t, "Mar-2025", groups[0].Month)
	assert.Equal(t, "Jan-2025", groups[1].Month)
	assert.Equal(t, []int64{1, 4}, []int64{groups[1].Rows[0].ReportID, groups[1].Rows[1].ReportID})
	assert.Equal(t, "N/A", groups[2].Month)
	assert.Equal(t, []string{"Mar-2025", "Jan-2025", "N/A"}, report.Months(rows))
}

func TestBuildDipova_AgrupaMultiplicaYOrdena(t *testing.T) {
	src := fixtureSources()
	fill := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	prod := ptrTime(time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC))
	src.Reports = []*entity.DailyShipmentReport{
		{
			ID: 1, CustomerCode: 10, FillingDate: fill, ProductionDate: prod,
			Driver: "João", DeliverVehicle: ptrStr("ABC1D23"), ProductTemperature: dec("4"),
			Products: []entity.ProductItem{
				{Code: 1, Quantity: dec("3")},
				{Code: 2, Quantity: dec("0")},
			},
		},
		{
			ID: 2, CustomerCode: 10, FillingDate: fill, ProductionDate: prod,
			Driver: "João", DeliverVehicle: ptrStr("ABC1D23"), ProductTemperature: dec("5"),
			Products: []entity.ProductItem{{Code: 1, Quantity: dec("2")}},
		},
		{
			ID: 3, CustomerCode: 20, FillingDate: fill, ProductionDate: prod,
			ProductTemperature: dec("3"),
			Products:           []entity.ProductItem{{Code: 2, Quantity: dec("7")}},
		},
		{
			ID: 4, CustomerCode: 10, FillingDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			Products: []entity.ProductItem{{Code: 2, Quantity: dec("100")}},
		},
	}

	d := report.BuildDipova(report.BuildRows(src), "Fev-2025")
	assert.Equal(t, "2025", d.Year)
	require.Len(t, d.Items, 2)

	iog := d.Items[0]
	assert.Equal(t, "Iogurte", iog.ProductName)
	assert.Equal(t, "Ágape Alimentos", iog.Destination)
	assert.Equal(t, "—", iog.Driver)
	assert.Equal(t, "—", iog.Vehicle)
	assert.True(t, dec("7").Equal(iog.Quantity))

	queijo := d.Items[1]
	assert.Equal(t, "Queijo Minas", queijo.ProductName)
	assert.True(t, dec("10").Equal(queijo.Quantity), "(3+2)×2 kg")
	assert.True(t, dec("5").Equal(queijo.Temperature), "última temperatura vista")
	assert.Equal(t, "08/02/2025", queijo.ProductionDate)
	assert.Equal(t, "10/02/2025", queijo.ExpeditionDate)
	assert.Equal(t, "ABC1D23", queijo.Vehicle)

	assert.True(t, dec("17").Equal(d.Total))
}

func TestBuildDipova_CollationPtBR(t *testing.T) {
	rows := []report.Row{{
		Month: "Abr-2025", Date: "2025-04-02", ClientName: "Cliente",
		Products: []report.ProductLine{
			{Code: 3, Name: "Zebu", Quantity: dec("1"), Weight: dec("1"), ProductionDate: "2025-04-01"},
			{Code: 2, Name: "Óleo", Quantity: dec("1"), Weight: dec("1"), ProductionDate: "2025-04-01"},
			{Code: 1, Name: "banana", Quantity: dec("1"), Weight: dec("1"), ProductionDate: "2025-04-01"},
		},
	}}
	d := report.BuildDipova(rows, "Abr-2025")
	require.Len(t, d.Items, 3)
	assert.Equal(t, []string{"banana", "Óleo", "Zebu"},
		[]string{d.Items[0].ProductName, d.Items[1].ProductName, d.Items[2].ProductName})
}

func TestBuildDipova_MesSinDatos(t *testing.T) {
	d := report.BuildDipova(nil, "Jan-2030")
	assert.Empty(t, d.Items)
	assert.True(t, d.Total.IsZero())
	assert.Equal(t, "2030", d.Year)
}

func TestBuildDipova_NoFusionaSiDifiereUnaDimension(t *testing.T) {
	base := func() report.Row {
		return report.Row{
			Month: "Abr-2025", Date: "2025-04-02", ClientName: "Cliente A",
			Driver: "João", DeliverVehicle: "ABC1D23", ProductTemperature: dec("4"),
			Products: []report.ProductLine{
				{Code: 1, Name: "Queijo", Quantity: dec("2"), Weight: dec("1"), ProductionDate: "2025-04-01"},
			},
		}
	}
	cases := []struct {
		name   string
		mutate func(r *report.Row)
	}{
		{"producto", func(r *report.Row) { r.Products[0].Code = 2 }},
		{"destino", func(r *report.Row) { r.ClientName = "Cliente B" }},
		{"producao", func(r *report.Row) { r.Products[0].ProductionDate = "2025-03-30" }},
		{"expedicao", func(r *report.Row) { r.Date = "2025-04-03" }},
		{"entregador", func(r *report.Row) { r.Driver = "Maria" }},
		{"caminhao", func(r *report.Row) { r.DeliverVehicle = "XYZ9K87" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := base()
			tc.mutate(&other)

			d := report.BuildDipova([]report.Row{base(), other}, "Abr-2025")
			require.Len(t, d.Items, 2)
			for _, it := range d.Items {
				assert.True(t, dec("2").Equal(it.Quantity), "cada línea conserva su cantidad")
			}
			assert.True(t, dec("4").Equal(d.Total))
		})
	}

	t.Run("todas iguales fusionan", func(t *testing.T) {
		d := report.BuildDipova([]report.Row{base(), base()}, "Abr-2025")
		require.Len(t, d.Items, 1)
		assert.True(t, dec("4").Equal(d.Items[0].Quantity))
	})
}

func TestBuildDipova_DescartadaNoAlteraLineaConMismaClave(t *testing.T) {
	line := report.ProductLine{Code: 1, Name: "Queijo", Quantity: dec("3"), Weight: dec("1"), ProductionDate: "2025-04-01"}
	zeroWeight := line
	zeroWeight.Quantity, zeroWeight.Weight = dec("5"), dec("0")
	negative := line
	negative.Quantity = dec("-1")

	rows := []report.Row{
		{
			Month: "Abr-2025", Date: "2025-04-02", ClientName: "Cliente A",
			Driver: "João", DeliverVehicle: "ABC1D23", ProductTemperature: dec("4"),
			Products: []report.ProductLine{line},
		},
		{
			Month: "Abr-2025", Date: "2025-04-02", ClientName: "Cliente A",
			Driver: "João", DeliverVehicle: "ABC1D23", ProductTemperature: dec("9"),
			Products: []report.ProductLine{zeroWeight, negative},
		},
	}

	d := report.BuildDipova(rows, "Abr-2025")
	require.Len(t, d.Items, 1)
	assert.True(t, dec("3").Equal(d.Items[0].Quantity))
	assert.True(t, dec("4").Equal(d.Items[0].Temperature), "la línea descartada no pisa la temperatura")
	assert.True(t, dec("3").Equal(d.Total))
}
