package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/expedicao-api/internal/application/analytics"
	"github.com/jhoicas/expedicao-api/internal/application/auth"
	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/application/reporting"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/excel"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/expedicao-api/internal/interfaces/http"
	"github.com/jhoicas/expedicao-api/pkg/jwt"
)

const testPassword = "segredo123"

type server struct {
	app   *fiber.App
	store *memory.Store
}

// newServer arma la API completa sobre el store en memoria con un admin
// (victor.leal, id 1) y un operador (maria.souza, id 2).
func newServer(t *testing.T) *server {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	require.NoError(t, s.Users().Create(ctx, &entity.User{Name: "Victor", Username: "victor.leal", PasswordHash: hash, Role: entity.RoleAdmin, Active: true}))
	require.NoError(t, s.Users().Create(ctx, &entity.User{Name: "Maria", Username: "maria.souza", PasswordHash: hash, Role: entity.RoleUser, Active: true}))

	log := zerolog.Nop()
	authUC := auth.NewAuthUseCase(s.Users(), jwt.Options{Secret: "e2e-secret", Issuer: "expedicao-test", TTL: time.Hour}, log)
	app := apphttp.NewApp(apphttp.AppConfig{Name: "expedicao-test"}, log)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          authUC,
		CustomerUC:      usecase.NewCustomerUseCase(s.Customers()),
		ProductUC:       usecase.NewProductUseCase(s.Products()),
		VehicleUC:       usecase.NewVehicleUseCase(s.Vehicles()),
		UserUC:          usecase.NewUserUseCase(s.Users()),
		DailyReportUC:   usecase.NewDailyReportUseCase(s.DailyReports(), s.Users(), s.Customers(), s.Vehicles(), log),
		MonthlyReportUC: usecase.NewMonthlyReportUseCase(s.MonthlyReports()),
		DashboardUC:     appanalytics.NewDashboardUseCase(s.Analytics(), s.Products(), s.Customers(), s.Vehicles()),
		ReportingUC: reporting.NewReportingUseCase(s.DailyReports(), s.Customers(), s.Products(), s.Users(),
			reporting.Header{Establishment: "Frigorífico Teste"}, time.UTC, excel.NewDipovaWriter()),
		ServiceName: "expedicao-test",
	})
	return &server{app: app, store: s}
}

func (sv *server) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := sv.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (sv *server) login(t *testing.T, username string) string {
	t.Helper()
	resp, body := sv.do(t, http.MethodPost, "/auth", "", dto.LoginRequest{Username: username, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Token
}

func errorOf(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	return e
}

func customerBody(code int, taxID string) map[string]any {
	return map[string]any{
		"code": code, "legal_name": "Mercado Central LTDA", "fantasy_name": "Mercado Central",
		"cnpj_cpf": taxID, "state_registration": "0745", "state": "df", "neighborhood": "Asa Sul",
		"address": "SQS 102", "cep": "70330000", "corporate_network": "Rede X",
		"email": "compras@mercado.com", "phone": "61999990000", "payment_method": "boleto",
	}
}

func dailyBody(customerCode int) map[string]any {
	return map[string]any{
		"invoiceNumber": 1001, "vehicleTemperature": "2.5", "hasGoodSanitaryCondition": true,
		"driver": "João", "userId": "2", "customerCode": customerCode, "productTemperature": "-1",
		"products": []map[string]any{{"code": 1, "quantity": 12}},
	}
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	sv := newServer(t)
	resp, body := sv.do(t, http.MethodPost, "/auth", "", dto.LoginRequest{Username: "victor.leal", Password: "errada123"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Usuário ou Senha incorretos.", errorOf(t, body).Message)

	resp, _ = sv.do(t, http.MethodPost, "/auth", "", map[string]any{"username": "victor.leal", "password": testPassword, "extra": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "campos desconocidos se rechazan")
}

// relatório con cliente inexistente → 404 nombrando al cliente, nada persistido.
func TestDailyReport_ClienteInexistente(t *testing.T) {
	sv := newServer(t)
	token := sv.login(t, "maria.souza")

	resp, body := sv.do(t, http.MethodPost, "/daily-report", token, dailyBody(999))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, string(body))
	assert.Contains(t, strings.ToLower(errorOf(t, body).Message), "cliente")

	all, err := sv.store.DailyReports().ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

// dos altas con el mismo código → la segunda es 409 y queda un solo cliente.
func TestCustomer_CodigoDuplicado(t *testing.T) {
	sv := newServer(t)
	token := sv.login(t, "victor.leal")

	resp, body := sv.do(t, http.MethodPost, "/customers", token, customerBody(10, "12345678000199"))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = sv.do(t, http.MethodPost, "/customers/register-customer", token, customerBody(10, "99999999000100"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errorOf(t, body).Code)

	resp, body = sv.do(t, http.MethodGet, "/customers", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.Page[dto.CustomerResponse]
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, dto.DefaultLimit, page.Limit)
	assert.Contains(t, string(body), `"code":"10"`, "los ids viajan como string")
}

// usuario desactivado con token vigente → 401 en cualquier ruta protegida.
func TestAuth_UsuarioDesactivadoPierdeAcceso(t *testing.T) {
	sv := newServer(t)
	admin := sv.login(t, "victor.leal")
	op := sv.login(t, "maria.souza")

	resp, _ := sv.do(t, http.MethodGet, "/dashboard/stats", op, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := sv.do(t, http.MethodPatch, "/usuarios/2", admin, map[string]any{"active": false})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = sv.do(t, http.MethodGet, "/dashboard/stats", op, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Acesso não autorizado.", errorOf(t, body).Message)
}

// borrar un cliente con relatórios → 409; cliente y relatório siguen existiendo.
func TestCustomer_BorrarConRelatorios(t *testing.T) {
	sv := newServer(t)
	admin := sv.login(t, "victor.leal")

	resp, body := sv.do(t, http.MethodPost, "/customers", admin, customerBody(10, "12345678000199"))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	resp, body = sv.do(t, http.MethodPost, "/daily-report", admin, dailyBody(10))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = sv.do(t, http.MethodDelete, "/customers/10", admin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.NotEmpty(t, errorOf(t, body).Message)

	c, err := sv.store.Customers().GetByCode(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, c)
	reports, total, err := sv.store.DailyReports().List(context.Background(), repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, reports, 1)
}

// 40 "é" son 40 runas pero 80 bytes: bcrypt no los acepta y la API responde 400, no 500.
func TestUser_SenhaMultibyteLargaEs400(t *testing.T) {
	sv := newServer(t)
	admin := sv.login(t, "victor.leal")

	resp, body := sv.do(t, http.MethodPost, "/usuarios", admin, map[string]any{
		"name": "Ana", "username": "ana.lima", "password": strings.Repeat("é", 40), "role": "user",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
	assert.Contains(t, errorOf(t, body).Message, "72 bytes")

	u, err := sv.store.Users().GetByUsername(context.Background(), "ana.lima")
	require.NoError(t, err)
	assert.Nil(t, u, "no se persiste nada")
}

func TestRoles_OperadorNoPuedeCadastrarCliente(t *testing.T) {
	sv := newServer(t)
	op := sv.login(t, "maria.souza")

	resp, body := sv.do(t, http.MethodPost, "/customers", op, customerBody(10, "12345678000199"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Acesso Negado.", errorOf(t, body).Message)

	resp, _ = sv.do(t, http.MethodGet, "/customers", op, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReports_ExportXLSX(t *testing.T) {
	sv := newServer(t)
	admin := sv.login(t, "victor.leal")
	resp, body := sv.do(t, http.MethodPost, "/customers", admin, customerBody(10, "12345678000199"))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	resp, body = sv.do(t, http.MethodPost, "/daily-report", admin, dailyBody(10))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = sv.do(t, http.MethodGet, "/reports/months", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var months []string
	require.NoError(t, json.Unmarshal(body, &months))
	require.Len(t, months, 1)

	resp, body = sv.do(t, http.MethodGet, "/reports/dipova/export?month="+months[0], admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, excel.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Relatorio_Comercializacao_")
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx es un zip")

	resp, _ = sv.do(t, http.MethodGet, "/reports/dipova/export?format=csv", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	sv := newServer(t)
	resp, body := sv.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
}
