package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application, built once at startup
// and passed to components by injection. The values are read by viper from
// an optional env file or from environment variables.
type Config struct {
	// Product catalog service
	CatalogBaseURL string `mapstructure:"CATALOG_BASE_URL"`
	CatalogAPIKey  string `mapstructure:"CATALOG_API_KEY"`

	// Shared secret for verifying access tokens issued by the user service
	JWTSecret string `mapstructure:"JWT_SECRET"`

	ListenAddr string `mapstructure:"LISTEN_ADDR"`
	DBPath     string `mapstructure:"DB_PATH"`
}

// Load reads configuration from an app.env file in the given path (if
// present) and from environment variables. It returns an error when any of
// the required values is unset, so the process refuses to start without them.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8081")
	v.SetDefault("DB_PATH", "sales.db")

	// AutomaticEnv alone does not feed Unmarshal; each key must be bound.
	for _, key := range []string{"CATALOG_BASE_URL", "CATALOG_API_KEY", "JWT_SECRET", "LISTEN_ADDR", "DB_PATH"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	for name, value := range map[string]string{
		"CATALOG_BASE_URL": cfg.CatalogBaseURL,
		"CATALOG_API_KEY":  cfg.CatalogAPIKey,
		"JWT_SECRET":       cfg.JWTSecret,
	} {
		if value == "" {
			return Config{}, fmt.Errorf("%s environment variable is not set", name)
		}
	}

	return cfg, nil
}
