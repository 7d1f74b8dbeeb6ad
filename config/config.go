package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name           string
		Port           string
		FrontendOrigin string
	}
	Database struct {
		Dsn          string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	Policy struct {
		AdminDomain     string
		MemberThreshold int64
		OnePerVoter     bool
	}
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}

	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	// Secrets come from the environment when present.
	AppConfig.Database.Dsn = getEnvOrDefault("DATABASE_DSN", AppConfig.Database.Dsn)
	AppConfig.Redis.Addr = getEnvOrDefault("REDIS_ADDR", AppConfig.Redis.Addr)
	AppConfig.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", AppConfig.Redis.Password)
	AppConfig.RabbitMQ.Url = getEnvOrDefault("RABBITMQ_URL", AppConfig.RabbitMQ.Url)

	if AppConfig.Policy.AdminDomain == "" {
		AppConfig.Policy.AdminDomain = "admin.ornor"
	}
	if AppConfig.Policy.MemberThreshold == 0 {
		AppConfig.Policy.MemberThreshold = 3
	}

	initDB()
	initRedis()
	initRabbit()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
