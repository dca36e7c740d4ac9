package database

import (
	"fmt"
	"strings"

	"swapi/config"
	"swapi/internal/logging"
	"swapi/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.URL)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.NewGormLogger(logger.Error), // SQL errors and slow queries only
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// Dialector picks a gorm driver from the connection string. Heroku-style
// postgres:// URLs are accepted as-is; pgx understands both schemes.
func Dialector(url string) (gorm.Dialector, error) {
	url = strings.TrimSpace(url)
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, "mysql://"):
		return mysql.Open(strings.TrimPrefix(url, "mysql://")), nil
	case strings.Contains(url, "@tcp("), strings.Contains(url, "@unix("):
		return mysql.Open(url), nil
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), nil
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		return sqlite.Open(url), nil
	}
	return nil, fmt.Errorf("unsupported database url %q", redact(url))
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.Planet{},
		&models.Vehicle{},
		&models.Favorite{},
	)
}

// Ping checks that the pool can reach the database.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// redact hides credentials in a URL before it ends up in an error message.
func redact(url string) string {
	at := strings.LastIndex(url, "@")
	if at < 0 {
		return url
	}
	scheme := strings.Index(url, "://")
	start := 0
	if scheme >= 0 && scheme < at {
		start = scheme + 3
	}
	return url[:start] + "***" + url[at:]
}
