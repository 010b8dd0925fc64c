package main

import (
	"embed"
	"log"

	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS); err != nil {
		log.Fatalf("migrate sales: %v", err)
	}
}
