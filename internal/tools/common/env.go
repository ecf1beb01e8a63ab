package common

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
	"github.com/sandeepkv93/volunteer-management-backend/internal/database"
)

// OpenDatabase loads envFile (existing variables win), checks the database
// settings and opens the database. The returned close func is safe to call
// once.
func OpenDatabase(envFile string) (*config.Config, *gorm.DB, func(), error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.LoadForTools()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return cfg, db, closeFn, nil
}
