package main

import (
	"backend/config"
	"backend/database"
	"backend/routes"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("migrations: %v", err)
	}

	r := routes.SetupRouter(db)
	logrus.Infof("listening on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		logrus.Fatalf("server: %v", err)
	}
}
