package database

import (
	"fmt"
	log "log/slog"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB opens the database, configures the connection pool and
// verifies connectivity.
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.NewGormLogger(),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// AutoMigrate keeps the schema in step with the model set. Unique
// indexes created here back the slug and email uniqueness invariants.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Contact{},
		&model.Subscription{},
		&model.SocialLink{},
		&model.GalleryItem{},
		&model.Upload{},
	)
}
