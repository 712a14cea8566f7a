package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// WhatsApp Cloud API configuration.
	VerifyToken   string `mapstructure:"VERIFY_TOKEN"`
	WhatsAppToken string `mapstructure:"WHATSAPP_TOKEN"`
	PhoneNumberID string `mapstructure:"PHONE_NUMBER_ID"`
	GraphAPIBase  string `mapstructure:"GRAPH_API_BASE"`
	OperatorWAID  string `mapstructure:"OPERATOR_WA_ID"`

	// Google Calendar configuration. GOOGLE_CREDENTIALS carries the service
	// account key as a JSON string.
	GoogleCredentials string `mapstructure:"GOOGLE_CREDENTIALS"`
	CalendarID        string `mapstructure:"CALENDAR_ID"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GRAPH_API_BASE", "https://graph.facebook.com/v18.0")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("SESSION_TTL_MIN", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
