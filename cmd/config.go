package cmd

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries everything main needs to assemble the application. Values
// come from the environment, with development-friendly defaults.
type Config struct {
	HTTPPort  string
	JWTSecret string
	LogLevel  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ArchivalSchedule string
	ArchiveOlderThan time.Duration
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "shiptrack")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("ARCHIVAL_SCHEDULE", "0 0 * * * *")
	viper.SetDefault("ARCHIVE_OLDER_THAN", "0")

	olderThan, err := time.ParseDuration(viper.GetString("ARCHIVE_OLDER_THAN"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:         viper.GetString("HTTP_PORT"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		DBHost:           viper.GetString("DB_HOST"),
		DBPort:           viper.GetString("DB_PORT"),
		DBUser:           viper.GetString("DB_USER"),
		DBPassword:       viper.GetString("DB_PASSWORD"),
		DBName:           viper.GetString("DB_NAME"),
		DBSslMode:        viper.GetString("DB_SSLMODE"),
		ArchivalSchedule: viper.GetString("ARCHIVAL_SCHEDULE"),
		ArchiveOlderThan: olderThan,
	}, nil
}
