package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	Port    string
	GinMode string

	// Identity provider settings. The API key must come from the
	// environment; there is no usable default.
	IdentityBaseURL string
	IdentityAPIKey  string
}

// Load reads configuration from the environment, with .env as an optional
// overlay for local development.
func Load() *Config {
	_ = godotenv.Load()

	viper.SetDefault("DB_DRIVER", "mysql")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_USER", "hiboard")
	viper.SetDefault("DB_PASSWORD", "hiboard")
	viper.SetDefault("DB_NAME", "hiboard")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com")
	viper.SetDefault("IDENTITY_API_KEY", "")

	viper.AutomaticEnv()

	return &Config{
		DBDriver:        viper.GetString("DB_DRIVER"),
		DBHost:          viper.GetString("DB_HOST"),
		DBPort:          viper.GetString("DB_PORT"),
		DBUser:          viper.GetString("DB_USER"),
		DBPassword:      viper.GetString("DB_PASSWORD"),
		DBName:          viper.GetString("DB_NAME"),
		Port:            viper.GetString("PORT"),
		GinMode:         viper.GetString("GIN_MODE"),
		IdentityBaseURL: viper.GetString("IDENTITY_BASE_URL"),
		IdentityAPIKey:  viper.GetString("IDENTITY_API_KEY"),
	}
}
