package cmd

import (
	"fmt"
	"time"
)

// Config holds every runtime setting of the service, parsed from the
// environment with caarlos0/env.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// JWTSecret verifies bearer tokens minted by the identity service.
	JWTSecret string `env:"JWT_SECRET,required"`

	PolicyEngineURL   string `env:"POLICY_ENGINE_URL,required"`
	WorkflowEngineURL string `env:"WORKFLOW_ENGINE_URL,required"`

	// OwnerReminderStaleAfter is how long a case may sit in PENDING_OWNER
	// before the hourly sweep records a reminder.
	OwnerReminderStaleAfter time.Duration `env:"OWNER_REMINDER_STALE_AFTER" envDefault:"72h"`
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
