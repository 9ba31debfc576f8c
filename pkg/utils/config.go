package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Broker      BrokerConfig
	Reservation ReservationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// BrokerConfig points at the Redis instance backing the notification queue.
type BrokerConfig struct {
	Addr      string
	Password  string
	DB        int
	QueueName string
}

type ReservationConfig struct {
	LockTimeout       time.Duration
	ReviewPromptDelay time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "event-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("BROKER_ADDR", "localhost:6379")
	viper.SetDefault("BROKER_DB", 0)
	viper.SetDefault("BROKER_QUEUE", "event_booking:notifications")
	viper.SetDefault("LOCK_TIMEOUT_MS", 5000)
	viper.SetDefault("REVIEW_PROMPT_DELAY_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, env vars still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
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
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Broker: BrokerConfig{
			Addr:      viper.GetString("BROKER_ADDR"),
			Password:  viper.GetString("BROKER_PASS"),
			DB:        viper.GetInt("BROKER_DB"),
			QueueName: viper.GetString("BROKER_QUEUE"),
		},
		Reservation: ReservationConfig{
			LockTimeout:       time.Duration(viper.GetInt("LOCK_TIMEOUT_MS")) * time.Millisecond,
			ReviewPromptDelay: time.Duration(viper.GetInt("REVIEW_PROMPT_DELAY_HOURS")) * time.Hour,
		},
	}

	return config, nil
}
