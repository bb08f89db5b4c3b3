package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/domain"
)

func TestID_SerializaComoString(t *testing.T) {
	b, err := json.Marshal(struct {
		ID dto.ID `json:"id"`
	}{ID: 9007199254740993})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"9007199254740993"}`, string(b))

	var in struct {
		A dto.ID `json:"a"`
		B dto.ID `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"42","b":7}`), &in))
	assert.Equal(t, dto.ID(42), in.A)
	assert.Equal(t, dto.ID(7), in.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"x"}`), &in))
}

func TestStrictUnmarshal_RechazaCamposDesconocidos(t *testing.T) {
	var req dto.LoginRequest
	err := dto.StrictUnmarshal([]byte(`{"username":"a.b","password":"123456","admin":true}`), &req)
	assert.Error(t, err)

	err = dto.StrictUnmarshal([]byte(`{"username":"a.b","password":"123456"}{}`), &req)
	assert.Error(t, err)

	require.NoError(t, dto.StrictUnmarshal([]byte(`{"username":"a.b","password":"123456"}`), &req))
	assert.Equal(t, "a.b", req.Username)
}

func TestNewPage_DataNuncaNull(t *testing.T) {
	p := dto.PageRequest{}
	p.DefaultPage()
	assert.Equal(t, dto.DefaultLimit, p.Limit)

	b, err := json.Marshal(dto.NewPage[dto.ProductResponse](nil, p, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"limit":10,"offset":0,"total":0}`, string(b))

	big := dto.PageRequest{Limit: 1000, Offset: -3}
	big.DefaultPage()
	assert.Equal(t, dto.MaxLimit, big.Limit)
	assert.Equal(t, 0, big.Offset)
}

func TestCreateCustomerRequest_Validate(t *testing.T) {
	valid := dto.CreateCustomerRequest{
		Code: 10, LegalName: "Mercado LTDA", FantasyName: "Mercado", TaxID: "12345678000199",
		StateRegistration: "0001", State: "DF", Neighborhood: "Asa Sul", Street: "SQS 102",
		PostalCode: "70330000", CorporateNetwork: "Rede", Email: "compras@mercado.com.br",
		Phone: "61999990000", PaymentMethod: "boleto",
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.TaxID = "12.345.678/0001-99"
	bad.Phone = "(61) 9999"
	bad.Email = "sem-arroba"
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Contains(t, err.Error(), "CNPJ/CPF deve conter apenas números")
	assert.Contains(t, err.Error(), "Telefone deve conter apenas números")
	assert.Contains(t, err.Error(), "e-mail")
}

func TestCreateUserRequest_Validate(t *testing.T) {
	ok := dto.CreateUserRequest{Name: "Victor", Username: "Victor.Leal", Password: "segredo", Role: "user"}
	require.NoError(t, ok.Validate())

	cases := map[string]dto.CreateUserRequest{
		"username sem ponto":      {Name: "V", Username: "victorleal", Password: "segredo", Role: "user"},
		"senha curta":             {Name: "V", Username: "v.l", Password: "123", Role: "user"},
		"cargo inválido":          {Name: "V", Username: "v.l", Password: "segredo", Role: "root"},
		"nome vazio":              {Name: " ", Username: "v.l", Password: "segredo", Role: "user"},
		"senha acima de 72 bytes": {Name: "V", Username: "v.l", Password: strings.Repeat("é", 40), Role: "user"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, in.Validate(), domain.ErrBadRequest)
		})
	}
}

func TestCreateDailyReportRequest_Validate(t *testing.T) {
	code := dto.ID(10)
	var req dto.CreateDailyReportRequest
	raw := `{
		"invoiceNumber": 123, "driver": "João", "userId": "1", "customerCode": 10,
		"vehicleTemperature": "4.5", "hasGoodSanitaryCondition": true,
		"fillingDate": "2020-01-01",
		"products": [{"code": 1, "quantity": "3", "productionDate": "2025-02-08"}]
	}`
	require.NoError(t, dto.StrictUnmarshal([]byte(raw), &req))
	require.NoError(t, req.Validate())
	assert.Equal(t, &code, req.CustomerCode)
	require.Len(t, req.Products, 1)

	item := req.Products[0].Entity()
	assert.Empty(t, item.Description)
	assert.Nil(t, item.ProductTemperature)
	require.NotNil(t, item.ProductionDate)
	assert.Equal(t, "2025-02-08", item.ProductionDate.Format("2006-01-02"))

	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":1,"quantity":"3","productionDate":"2025-02-08T00:00:00Z"}`, string(b),
		"campos opcionales ausentes no se persisten")

	missing := dto.CreateDailyReportRequest{InvoiceNumber: 1, Driver: "x", UserID: 1}
	assert.ErrorIs(t, missing.Validate(), domain.ErrBadRequest, "sin cliente")

	badItem := dto.CreateDailyReportRequest{InvoiceNumber: 1, Driver: "x", UserID: 1, CustomerCode: &code,
		Products: []dto.ProductItemRequest{{Code: 0, Quantity: decimal.NewFromInt(1)}}}
	err = badItem.Validate()
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, domain.Message(err), "products[0].code deve ser maior que zero")

	sif := "XYZ"
	badSif := dto.CreateDailyReportRequest{InvoiceNumber: 1, Driver: "x", UserID: 1, CustomerCode: &code, SifOrSisbi: &sif}
	assert.ErrorIs(t, badSif.Validate(), domain.ErrBadRequest)
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC1D23", dto.NormalizePlate(" abc-1d23 "))
	assert.Equal(t, "ABC1234", dto.NormalizePlate("ABC 1234"))
}

func TestUserRequests_SenhaLimitadaEmBytes(t *testing.T) {
	accented := strings.Repeat("é", 40)
	assert.Len(t, []rune(accented), 40)
	assert.Greater(t, len(accented), dto.MaxPasswordBytes)

	create := dto.CreateUserRequest{Name: "Victor", Username: "victor.leal", Password: accented, Role: "user"}
	err := create.Validate()
	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Equal(t, "A senha deve ter no máximo 72 bytes", domain.Message(err))

	update := dto.UpdateUserRequest{Password: &accented}
	assert.ErrorIs(t, update.Validate(), domain.ErrBadRequest)

	fits := strings.Repeat("é", 36)
	update.Password = &fits
	assert.NoError(t, update.Validate())
}

func TestValidate_EtiquetasConNombresJSON(t *testing.T) {
	vehicle := dto.CreateVehicleRequest{Model: "Accelo", Plate: "ABC1D23", Phone: "61999990000", MaximumLoad: decimal.NewFromInt(-1)}
	err := vehicle.Validate()
	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Equal(t, "maximumLoad não pode ser negativo", domain.Message(err))

	empty := ""
	upd := dto.UpdateVehicleRequest{Model: &empty}
	assert.ErrorContains(t, upd.Validate(), "model", "un puntero informado se valida aunque esté vacío")
	assert.NoError(t, (&dto.UpdateVehicleRequest{}).Validate(), "campos ausentes no se validan")

	neg := decimal.NewFromInt(-5)
	monthly := dto.UpdateMonthlyReportRequest{Quantity: &neg}
	assert.ErrorContains(t, monthly.Validate(), "quantity não pode ser negativo")
}

func TestCreateDailyReportRequest_ClienteOGrupos(t *testing.T) {
	groups := dto.CreateDailyReportRequest{InvoiceNumber: 1, Driver: "x", UserID: 1,
		CustomerGroups: []dto.CustomerGroupRequest{{CustomerCode: 10}}}
	assert.NoError(t, groups.Validate())

	groups.CustomerGroups[0].Items = []dto.ProductItemRequest{{Code: 1, Quantity: decimal.NewFromInt(-2)}}
	err := groups.Validate()
	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Equal(t, "customerGroups[0].items[0].quantity não pode ser negativo", domain.Message(err))

	none := dto.CreateDailyReportRequest{InvoiceNumber: 0, Driver: "x", UserID: 1}
	msg := domain.Message(none.Validate())
	assert.Contains(t, msg, "invoiceNumber deve ser maior que zero")
	assert.Contains(t, msg, "customerCode é obrigatório quando customerGroups não é informado",
		"las reglas de etiqueta y la regla cruzada salen en un solo mensaje")
}
