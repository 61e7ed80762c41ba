package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vorathons/memory-mate/internal/logger"
)

// AI provider names accepted in AI_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	TelegramToken string
	AIProvider    string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	Reminder      ReminderConfig
	Logger        LoggerConfig
}

type ReminderConfig struct {
	Timezone string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	return &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		AIProvider:    strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderGemini)),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		Reminder: ReminderConfig{
			Timezone: getEnvOrDefault("REMINDER_TIMEZONE", "Asia/Bangkok"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}, nil
}

// Validate checks that the config is sufficient to start the bot.
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	switch c.AIProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.AIProvider)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.AIProvider)
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AIProvider)
	}
	return nil
}
