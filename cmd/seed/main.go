package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/stock-control-api/pkg/config"
	"github.com/tu-usuario/stock-control-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Credenciales del administrador inicial. Cambiar la contraseña tras el primer
// ingreso en cualquier entorno que no sea desarrollo.
const (
	defaultAdminEmail    = "admin"
	defaultAdminPassword = "admin123"
)

// Crea el usuario administrador inicial si no existe todavía.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByEmail(defaultAdminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar administrador")
	}
	if existing != nil {
		log.Info().Str("email", defaultAdminEmail).Msg("el administrador ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("generar hash de contraseña")
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Administrador",
		Email:        defaultAdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("email", defaultAdminEmail).Msg("administrador inicial creado")
}
