package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (l LogLevel) ToSlog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type LogFormat string

const (
	LogFormatPlaintext LogFormat = "plaintext"
	LogFormatJSON      LogFormat = "json"
)

type AppEnv string

const (
	AppEnvDev        AppEnv = "dev"
	AppEnvProduction AppEnv = "production"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	Log      LogConfig
	Sentry   SentryConfig
}

type AppConfig struct {
	Debug           bool
	Port            uint32 `default:"3000"`
	Host            string
	Name            string
	ShutdownTimeout int32  `default:"2"` // in seconds
	Env             AppEnv `default:"production"`
	Version         string
	RequestTimeout  uint32 `default:"30"` // in seconds
	// CompanyName appears on rendered invoices as the sender.
	CompanyName string
}

type DatabaseConfig struct {
	URL string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// Notifications is the optional cc address for outgoing invoices.
	Notifications string
}

type LogConfig struct {
	Format  LogFormat `default:"json"`
	Level   LogLevel
	Verbose bool
}

type SentryConfig struct {
	Enabled      bool
	DSN          string
	SampleRate   float64
	TracesRate   float64
	ProfilesRate float64
}

func (c *Config) IsTest() bool {
	return flag.Lookup("test.v") != nil || strings.HasSuffix(os.Args[0], ".test") ||
		strings.Contains(os.Args[0], "/_test/")
}

// Load the configuration file from the specified filesystem.
// You can specify additional .env files to load, by default this only checks for ".env" in the
// current working directory.
func Load(configFS fs.FS, dotenvFiles ...string) (*Config, error) {
	file, err := configFS.Open("config.toml")
	if err != nil {
		return nil, fmt.Errorf("could not find config.toml in the configFS: %w", err)
	}

	reader := viper.NewWithOptions(viper.KeyDelimiter("_"))
	reader.SetConfigType("toml")

	if err = reader.ReadConfig(file); err != nil {
		return nil, fmt.Errorf("could not load the app configuration: %w", err)
	}

	// Environment override
	err = godotenv.Load(dotenvFiles...)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("No .env file found, continuing...")
	} else if err != nil {
		return nil, fmt.Errorf(".env file found, but could not load it: %w", err)
	}
	reader.AutomaticEnv()

	var config Config
	if err := reader.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("invalid config format: %w", err)
	}

	if config.App.Debug && !config.IsTest() {
		slog.Warn("APP_DEBUG is turned on, do not run this mode in production!")
	}

	return &config, nil
}
