package main

import (
	"context"
	"flag"

	"github.com/pressly/goose/v3"
	"github.com/tu-usuario/stock-control-api/pkg/config"
	"github.com/tu-usuario/stock-control-api/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Aplica las migraciones SQL de db/migrations con goose.
// Uso: migrate [-dir db/migrations] [-rollback]
func main() {
	var (
		dir      = flag.String("dir", "db/migrations", "directorio de migraciones SQL")
		rollback = flag.Bool("rollback", false, "revertir la última migración aplicada")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := goose.OpenDBWithDriver("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión para migraciones")
	}
	defer db.Close()
	goose.SetTableName("schema_migrations")

	command := "up"
	if *rollback {
		command = "down"
	}
	if err := goose.RunContext(context.Background(), command, db, *dir); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("ejecutar migraciones")
	}
	log.Info().Str("command", command).Str("dir", *dir).Msg("migraciones aplicadas")
}
