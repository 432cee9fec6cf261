// Package db provides database connection helpers built on GORM.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "item_backend/internal/feature/auth/domain/entity"
	itementity "item_backend/internal/feature/items/domain/entity"
)

// Config holds the database connection settings, loaded from environment variables.
type Config struct {
	// Driver selects the database driver, "mysql" (default) or "postgres".
	Driver string

	User     string
	Password string
	Name     string
	Host     string
	Port     string

	// InstanceName is the Cloud SQL instance connection name. When set, the
	// MySQL DSN uses a unix socket instead of TCP.
	InstanceName string
}

// LoadConfig reads the database configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Driver:       os.Getenv("DB_DRIVER"),
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN builds the MySQL DSN string for the given config.
// InstanceName takes precedence over Host/Port.
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// BuildPostgresDSN builds the PostgreSQL DSN string for the given config.
func BuildPostgresDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
}

// open selects the GORM dialector for the configured driver.
func open(cfg Config) gorm.Dialector {
	if cfg.Driver == "postgres" {
		return gpostgres.Open(BuildPostgresDSN(cfg))
	}
	return gmysql.Open(BuildDSN(cfg))
}

// OpenDB connects to the database with a retry loop and runs migrations when
// RUN_MIGRATIONS=true. Startup aborts if no connection can be made within
// 60 seconds.
func OpenDB() *gorm.DB {
	cfg := LoadConfig()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(open(cfg), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Item）
		if err := db.AutoMigrate(
			&authentity.User{},
			&itementity.Item{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
