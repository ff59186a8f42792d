package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Storage  StorageConfig
	Reminder ReminderConfig
	Telegram TelegramConfig
	API      APIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the on-disk JSON task store.
type StorageConfig struct {
	FilePath string
}

// ReminderConfig controls the periodic due-date scanner.
type ReminderConfig struct {
	Enabled  bool
	Interval time.Duration
}

// TelegramConfig enables reminder delivery via a Telegram bot. Both fields
// must be set for the notifier to be wired.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type APIConfig struct {
	RateLimitPerMin int
	AllowedOrigins  []string
	ParseCacheSize  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/smartodo/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/smartodo/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.FilePath = viper.GetString("storage.file_path")
	if storagePath := viper.GetString("storage_file_path"); storagePath != "" {
		cfg.Storage.FilePath = storagePath
	}

	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.Interval = viper.GetDuration("reminder.interval")
	if cfg.Reminder.Interval <= 0 {
		return nil, fmt.Errorf("reminder.interval must be positive, got %s", cfg.Reminder.Interval)
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgChat := viper.GetInt64("telegram_chat_id"); tgChat != 0 {
		cfg.Telegram.ChatID = tgChat
	}

	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")
	cfg.API.ParseCacheSize = viper.GetInt("api.parse_cache_size")

	// Split origins since viper might not parse the array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("api.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.API.AllowedOrigins = origins

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.file_path", "data/tasks.json")
	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.interval", "1m")
	viper.SetDefault("api.rate_limit_per_min", 120)
	viper.SetDefault("api.parse_cache_size", 256)
}
