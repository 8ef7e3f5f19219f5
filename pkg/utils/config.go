package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Assistant AssistantConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type AssistantConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ASSISTANT_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("ASSISTANT_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ASSISTANT_TIMEOUT_SECONDS", 15)

	// .env is optional; env vars and defaults cover a fresh checkout
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Assistant: AssistantConfig{
			APIKey:         viper.GetString("ASSISTANT_API_KEY"),
			BaseURL:        viper.GetString("ASSISTANT_BASE_URL"),
			Model:          viper.GetString("ASSISTANT_MODEL"),
			TimeoutSeconds: viper.GetInt("ASSISTANT_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}
