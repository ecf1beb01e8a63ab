package database

import (
	"context"
	"time"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&domain.UserProfile{},
		&domain.UserCredential{},
		&domain.PricingEntry{},
		&domain.Notification{},
		&domain.VolunteerHistory{},
	}
}

func Migrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(Models()...)
	observability.RecordDatabaseStartupDuration(context.Background(), "migrate", time.Since(start))
	if err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "error")
		return err
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "success")
	return nil
}

// TableNames reports the tables Migrate manages, for plan output.
func TableNames(db *gorm.DB) []string {
	names := make([]string, 0, len(Models()))
	for _, m := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			continue
		}
		names = append(names, stmt.Schema.Table)
	}
	return names
}
