package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Admin back-office credentials (bcrypt hash of the admin password).
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// WhatsApp gateway configuration.
	WhatsAppAPIURL   string `mapstructure:"WHATSAPP_API_URL"`
	WhatsAppAPIKey   string `mapstructure:"WHATSAPP_API_KEY"`
	WhatsAppSender   string `mapstructure:"WHATSAPP_SENDER"`
	AdminPhone       string `mapstructure:"ADMIN_PHONE"`
	PhoneCountryCode string `mapstructure:"PHONE_COUNTRY_CODE"`

	// Public URL of the admin panel, linked in new-request notifications.
	AdminURL string `mapstructure:"ADMIN_URL"`

	// Cloudinary configuration.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// When true, appointment creation re-checks slot occupancy inside a
	// transaction before inserting. The legacy behavior (plain insert) accepted
	// a race where two clients could book the same hour.
	GuardedBooking bool `mapstructure:"GUARDED_BOOKING"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "jojocolaresbeauty")
	viper.SetDefault("WHATSAPP_API_URL", "https://whaply.top")
	viper.SetDefault("PHONE_COUNTRY_CODE", "55")
	viper.SetDefault("ADMIN_URL", "http://localhost:8080/admin")
	viper.SetDefault("GUARDED_BOOKING", true)

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
