package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/config"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Models lists every table in creation order (FK targets first)
func Models() []any {
	return []any{
		&model.ContactSubmission{},
	}
}

// Migrate drops and recreates all tables when DB_AUTO_MIGRATE is enabled.
// It refuses to run in production.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("Database migration disabled", "auto_migrate", false, "env", cfg.App.Env)
		return nil
	}

	if cfg.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is not allowed in production")
	}

	slog.Warn("Database migration started, all tables will be dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Drop in reverse creation order
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		tableName := tableNameOf(db, models[i])

		var count int64
		db.Raw("SELECT COUNT(*) FROM USER_TABLES WHERE UPPER(TABLE_NAME) = UPPER(?)", tableName).Scan(&count)
		if count == 0 {
			continue
		}

		dropSQL := fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", tableName)
		if err := db.Exec(dropSQL).Error; err != nil {
			slog.Debug("Drop table failed", "table", tableName, "error", err)
		} else {
			slog.Debug("Table dropped", "table", tableName)
		}
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("Database migration completed")
	return nil
}

// AutoMigrate creates or updates the tables of every model
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("Table migrated", "model", fmt.Sprintf("%T", m))
	}
	return nil
}

func tableNameOf(db *gorm.DB, m any) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(m); err != nil {
		return fmt.Sprintf("%T", m)
	}
	return stmt.Schema.Table
}
