package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres database, retrying with backoff so the
// service survives starting before the database container is ready.
func Connect(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 1; i <= 15; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					logrus.Infof("database connected (attempt %d)", i)
					return db, nil
				}
			}
		}

		logrus.Warnf("database connection attempt %d failed: %v", i, err)

		wait := time.Duration(1<<uint(i-1)) * time.Second
		if wait > 10*time.Second {
			wait = 10 * time.Second
		}
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("failed to connect to database after 15 attempts: %w", err)
}
