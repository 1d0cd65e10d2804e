package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Drive-time planner specifics
	Planner        PlannerConfig
	Scan           ScanConfig
	GoogleCalendar GoogleCalendarConfig
	Maps           MapsConfig
	Notification   NotificationConfig
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

// PlannerConfig drives the reconciliation logic.
type PlannerConfig struct {
	HomeAddress   string // Drive origin; reconciliation skips with a warning when empty
	BufferMinutes int    // Gap between drive end and meeting start
	CalendarIDs   string // Comma-separated calendar ids to scan
}

// ScanConfig controls the polling cadences and listing window.
type ScanConfig struct {
	LookaheadHours int    // How far ahead a scan looks for source events
	PollCron       string // Frequent poll schedule
	BackupCron     string // Slower backup poll schedule
	PageSize       int64  // Max events listed per calendar per scan
}

type GoogleCalendarConfig struct {
	CredentialsPath string
}

// MapsConfig holds the Distance Matrix credential.
type MapsConfig struct {
	APIKey string
}

// NotificationConfig guards the push-notification callback.
type NotificationConfig struct {
	ChannelToken    string // Expected X-Goog-Channel-Token value, empty disables the check
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.HomeAddress = viper.GetString("planner.home_address")
	cfg.Planner.BufferMinutes = viper.GetInt("planner.buffer_minutes")
	cfg.Planner.CalendarIDs = viper.GetString("planner.calendar_ids")
	if home := viper.GetString("home_address"); home != "" {
		cfg.Planner.HomeAddress = home
	}
	if viper.IsSet("buffer_minutes") {
		cfg.Planner.BufferMinutes = viper.GetInt("buffer_minutes")
	}
	if ids := viper.GetString("calendar_ids"); ids != "" {
		cfg.Planner.CalendarIDs = ids
	}

	// Scan
	cfg.Scan.LookaheadHours = viper.GetInt("scan.lookahead_hours")
	cfg.Scan.PollCron = viper.GetString("scan.poll_cron")
	cfg.Scan.BackupCron = viper.GetString("scan.backup_cron")
	cfg.Scan.PageSize = viper.GetInt64("scan.page_size")
	if viper.IsSet("scan_lookahead_hours") {
		cfg.Scan.LookaheadHours = viper.GetInt("scan_lookahead_hours")
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Distance Matrix
	cfg.Maps.APIKey = viper.GetString("maps.api_key")
	if mapsKey := viper.GetString("maps_api_key"); mapsKey != "" {
		cfg.Maps.APIKey = mapsKey
	}

	// Push notifications
	cfg.Notification.ChannelToken = viper.GetString("notification.channel_token")
	cfg.Notification.RateLimitPerMin = viper.GetInt("notification.rate_limit_per_min")
	if token := viper.GetString("channel_token"); token != "" {
		cfg.Notification.ChannelToken = token
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("planner.buffer_minutes", 10)
	viper.SetDefault("planner.calendar_ids", "primary")
	viper.SetDefault("scan.lookahead_hours", 48)
	viper.SetDefault("scan.poll_cron", "*/10 * * * *")
	viper.SetDefault("scan.backup_cron", "7 */6 * * *")
	viper.SetDefault("scan.page_size", 100)
	viper.SetDefault("notification.rate_limit_per_min", 60)
}
