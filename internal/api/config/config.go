package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg is the globally accessible configuration instance.
var Cfg *Config

// LoadConfig reads the yaml config file into Cfg. Environment variables
// (BLOG_SERVER_MODE, BLOG_JWT_SECRET, ...) override file values.
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("BLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// IsProduction reports whether the server runs in production mode.
// Production suppresses internal error detail, enforces the real
// reCAPTCHA check and marks auth cookies Secure.
func IsProduction() bool {
	return Cfg != nil && Cfg.Server.Mode == "production"
}
