package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string `env:"APP_ENV" env-default:"local"`
	HTTPPort   string `env:"HTTP_PORT" env-default:"8080"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-required:"true"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-required:"true"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`

	// Six-field cron expressions, seconds first.
	CalendarResyncSpec string `env:"CALENDAR_RESYNC_SPEC" env-default:"0 */5 * * * *"`
	OverdueReportSpec  string `env:"OVERDUE_REPORT_SPEC" env-default:"0 0 * * * *"`

	// Timezone in which lateness is judged by calendar day.
	Timezone string `env:"TIMEZONE" env-default:"UTC"`
}

// LoadConfig reads an optional .env file from the working directory and then
// the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) IsLocal() bool {
	return c.AppEnv == "local"
}
