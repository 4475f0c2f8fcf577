package config

import (
	"log"
	"os"
	"strings"
	"sync"
)

type AppConfig struct {
	Name       string
	Env        string
	Port       string
	BaseURL    string
	AIProvider string // "gemini", "openrouter", or "" for keyword fallback
	LogJSON    bool
	LogDebug   bool
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:       os.Getenv("APP_NAME"),
			Env:        env,
			Port:       os.Getenv("APP_PORT"),
			BaseURL:    os.Getenv("APP_URL"),
			AIProvider: strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER"))),
			LogJSON:    os.Getenv("LOG_JSON") == "true",
			LogDebug:   os.Getenv("LOG_DEBUG") == "true",
		}
	})
	return appConfig
}
