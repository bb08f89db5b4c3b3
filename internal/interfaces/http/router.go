package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/expedicao-api/internal/application/analytics"
	"github.com/jhoicas/expedicao-api/internal/application/auth"
	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/application/reporting"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name         string
	CORSOrigins  string // lista separada por comas; vacío = "*"
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewApp crea la aplicación Fiber con el decoder JSON estricto, el manejador
// de errores y los middlewares comunes (recover, request id, logging, CORS).
func NewApp(cfg AppConfig, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		JSONDecoder:  dto.StrictUnmarshal,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	// Dentro de RequestLogger para que un panic quede registrado como 500.
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + HeaderRequestID,
		ExposeHeaders: "Content-Disposition, " + HeaderRequestID,
	}))
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	CustomerUC      *usecase.CustomerUseCase
	ProductUC       *usecase.ProductUseCase
	VehicleUC       *usecase.VehicleUseCase
	UserUC          *usecase.UserUseCase
	DailyReportUC   *usecase.DailyReportUseCase
	MonthlyReportUC *usecase.MonthlyReportUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	ReportingUC     *reporting.ReportingUseCase
	// Sessions valida tokens; por defecto AuthUC.
	Sessions SessionValidator
	// ServiceName aparece en GET /health.
	ServiceName string
}

// Router registra las rutas de la API. Sin prefijo /api: el frontend llama a /customers, /auth, etc.
func Router(app *fiber.App, deps RouterDeps) {
	sessions := deps.Sessions
	if sessions == nil {
		sessions = deps.AuthUC
	}
	authn := AuthMiddleware(sessions)
	admin := RequireAdmin()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth", authHandler.Login)

	// Customers: lectura para cualquier usuario, escritura sólo admin.
	customers := app.Group("/customers", authn)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", admin, customerHandler.Create)
	customers.Post("/register-customer", admin, customerHandler.Create)
	customers.Get("/:code", customerHandler.GetByCode)
	customers.Patch("/:code", admin, customerHandler.Update)
	customers.Delete("/:code", admin, customerHandler.Delete)

	products := app.Group("/products", authn)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", admin, productHandler.Create)
	products.Post("/register-product", admin, productHandler.Create)
	products.Get("/:code", productHandler.GetByCode)
	products.Patch("/:code", admin, productHandler.Update)
	products.Delete("/:code", admin, productHandler.Delete)

	vehicles := app.Group("/vehicles", authn)
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", admin, vehicleHandler.Create)
	vehicles.Post("/register-vehicle", admin, vehicleHandler.Create)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Patch("/:id", admin, vehicleHandler.Update)
	vehicles.Delete("/:id", admin, vehicleHandler.Delete)

	users := app.Group("/usuarios", authn)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", admin, userHandler.Create)
	users.Post("/cadastrar-usuario", admin, userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", admin, userHandler.Update)
	users.Delete("/:id", admin, userHandler.Delete)

	// Relatórios: cualquier usuario registra y edita; borrar es de admin.
	daily := app.Group("/daily-report", authn)
	dailyHandler := NewDailyReportHandler(deps.DailyReportUC)
	daily.Get("/", dailyHandler.List)
	daily.Post("/", dailyHandler.Create)
	daily.Get("/:id", dailyHandler.GetByID)
	daily.Patch("/:id", dailyHandler.Update)
	daily.Delete("/:id", admin, dailyHandler.Delete)

	monthly := app.Group("/monthly-report", authn)
	monthlyHandler := NewMonthlyReportHandler(deps.MonthlyReportUC)
	monthly.Get("/", monthlyHandler.List)
	monthly.Post("/", monthlyHandler.Create)
	monthly.Get("/:id", monthlyHandler.GetByID)
	monthly.Patch("/:id", monthlyHandler.Update)
	monthly.Delete("/:id", admin, monthlyHandler.Delete)

	dashboard := app.Group("/dashboard", authn)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/mostProductsSold", dashboardHandler.MostProductsSold)
	dashboard.Get("/productsSoldByState", dashboardHandler.ProductsSoldByState)

	reports := app.Group("/reports", authn)
	reportHandler := NewReportHandler(deps.ReportingUC)
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/months", reportHandler.Months)
	reports.Get("/dipova", reportHandler.Dipova)
	reports.Get("/dipova/export", reportHandler.Export)
}
