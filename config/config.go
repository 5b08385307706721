package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration (clinic info documents).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Calendar service configuration.
	CalendarAPIURL      string `mapstructure:"CALENDAR_API_URL"`
	CalendarTimeoutSecs int    `mapstructure:"CALENDAR_TIMEOUT_SECS"`

	// Dialogue session configuration.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Data files.
	ClinicInfoFile     string `mapstructure:"CLINIC_INFO_FILE"`
	DoctorScheduleFile string `mapstructure:"DOCTOR_SCHEDULE_FILE"`

	// Reminder queue configuration.
	ReminderLeadHours     int  `mapstructure:"REMINDER_LEAD_HOURS"`
	ReminderWorkerEnabled bool `mapstructure:"REMINDER_WORKER_ENABLED"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "clinicflow")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("CALENDAR_API_URL", "http://localhost:8080/api/calendar")
	viper.SetDefault("CALENDAR_TIMEOUT_SECS", 3)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("CLINIC_INFO_FILE", "data/clinic_info.json")
	viper.SetDefault("DOCTOR_SCHEDULE_FILE", "data/doctor_schedule.json")
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)
	viper.SetDefault("REMINDER_WORKER_ENABLED", true)

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
