package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"

	appanalytics "github.com/jhoicas/expedicao-api/internal/application/analytics"
	"github.com/jhoicas/expedicao-api/internal/application/auth"
	"github.com/jhoicas/expedicao-api/internal/application/reporting"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/expedicao-api/internal/infrastructure/pdf"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/expedicao-api/internal/interfaces/http"
	"github.com/jhoicas/expedicao-api/pkg/config"
	"github.com/jhoicas/expedicao-api/pkg/jwt"
	"github.com/jhoicas/expedicao-api/pkg/logger"
)

// @title                       Expedição API
// @version                     1.0
// @description                 Registro de expedições de alimentos, cadastros e relatórios de comercialização.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("REPORT_TIMEZONE inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	dailyRepo := postgres.NewDailyReportRepository(pool)
	monthlyRepo := postgres.NewMonthlyReportRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, jwt.Options{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      jwt.TTLDuration(cfg.JWT.TTL),
	}, log.Zerolog())

	// Relatório de comercialização: mismo agregado, dos formatos de descarga.
	reportingUC := reporting.NewReportingUseCase(
		dailyRepo, customerRepo, productRepo, userRepo,
		reporting.Header{
			Establishment: cfg.Dipova.Establishment,
			Registration:  cfg.Dipova.Registration,
			Address:       cfg.Dipova.Address,
			Phone:         cfg.Dipova.Phone,
			Responsible:   cfg.Dipova.Responsible,
		},
		loc,
		excel.NewDipovaWriter(),
		infrapdf.NewDipovaWriter(),
	)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		CORSOrigins:  cfg.HTTP.CORSOrigins(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	}, log.Zerolog())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Expedição API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		CustomerUC:      usecase.NewCustomerUseCase(customerRepo),
		ProductUC:       usecase.NewProductUseCase(productRepo),
		VehicleUC:       usecase.NewVehicleUseCase(vehicleRepo),
		UserUC:          usecase.NewUserUseCase(userRepo),
		DailyReportUC:   usecase.NewDailyReportUseCase(dailyRepo, userRepo, customerRepo, vehicleRepo, log.Zerolog()),
		MonthlyReportUC: usecase.NewMonthlyReportUseCase(monthlyRepo),
		DashboardUC:     appanalytics.NewDashboardUseCase(analyticsRepo, productRepo, customerRepo, vehicleRepo),
		ReportingUC:     reportingUC,
		ServiceName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
