// Package postgres implements the repository ports on PostgreSQL via GORM.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/senibo/blog-api/internal/platform/config"
)

// Open connects to PostgreSQL and configures the connection pool.
// Error translation is enabled so unique-constraint violations surface
// as gorm.ErrDuplicatedKey.
func Open(cfg *config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	logger.Info("connected to postgres",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("database", cfg.Name),
	)

	return db, nil
}

// Migrate creates or updates the schema for the post and tag tables,
// including the unique index on tag names that arbitrates concurrent
// tag creation.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&tagRecord{}, &postRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// HealthChecker reports database connectivity to the health registry.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a health checker for the given database handle.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifies this check in health responses.
func (h *HealthChecker) Name() string {
	return "postgres"
}

// Check pings the database within the context deadline.
func (h *HealthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return sqlDB.PingContext(pingCtx)
}
