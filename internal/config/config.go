package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Jobs   JobsConfig   `mapstructure:"jobs"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type JobsConfig struct {
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
	HeartbeatLog      string        `mapstructure:"heartbeat_log"`
	ReminderInterval  time.Duration `mapstructure:"reminder_interval"`
	ReminderWindow    time.Duration `mapstructure:"reminder_window"`
	ReminderLog       string        `mapstructure:"reminder_log"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is not an error; defaults cover local development.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.crmd/")
	v.AddConfigPath("/etc/crmd/")

	// Enable environment variable override with CRMD_ prefix
	v.SetEnvPrefix("CRMD")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "crmd.db")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("jobs.heartbeat_interval", 5*time.Minute)
	v.SetDefault("jobs.heartbeat_log", "tmp/crm_heartbeat_log.txt")
	v.SetDefault("jobs.reminder_interval", 24*time.Hour)
	v.SetDefault("jobs.reminder_window", 7*24*time.Hour)
	v.SetDefault("jobs.reminder_log", "tmp/order_reminders_log.txt")
	v.SetDefault("log.mode", "dev")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
