// seed_admin aplica las migraciones y crea el primer administrador.
//
// Uso: SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
// Usuario y nombre salen de SEED_ADMIN_USERNAME / SEED_ADMIN_NAME.
// Si el usuario ya existe no hace nada.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jhoicas/expedicao-api/internal/application/dto"
	"github.com/jhoicas/expedicao-api/internal/application/usecase"
	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/infrastructure/postgres"
	"github.com/jhoicas/expedicao-api/pkg/config"
	"github.com/jhoicas/expedicao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.Seed.AdminPassword == "" {
		log.Error().Msg("SEED_ADMIN_PASSWORD es obligatorio")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	users := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
	_, err = users.Create(ctx, dto.CreateUserRequest{
		Name:     cfg.Seed.AdminName,
		Username: cfg.Seed.AdminUsername,
		Password: cfg.Seed.AdminPassword,
		Role:     entity.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		log.Info().Str("username", cfg.Seed.AdminUsername).Msg("administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Str("detail", domain.Message(err)).Msg("crear administrador")
	default:
		log.Info().Str("username", cfg.Seed.AdminUsername).Msg("administrador creado")
	}
}
