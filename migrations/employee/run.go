package main

import (
	"embed"

	"github.com/ghuser/bizservices/pkg/config"
	"github.com/ghuser/bizservices/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, "employee", MigrationsFS); err != nil {
		panic(err)
	}
}
