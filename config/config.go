package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Game     GameConfig     `mapstructure:"game"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type GameConfig struct {
	CasesDir       string `mapstructure:"cases_dir"`    // extra case files, optional
	DefaultCase    string `mapstructure:"default_case"` // used by the console
	SuspectBuckets int    `mapstructure:"suspect_buckets"`
}

// The verdict ledger only lives as long as the process.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

type AuthConfig struct {
	SessionSecret string `mapstructure:"session_secret"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:8080"})

	v.SetDefault("game.cases_dir", "./data/cases")
	v.SetDefault("game.default_case", "manor")
	v.SetDefault("game.suspect_buckets", 101)

	v.SetDefault("database.dsn", "file:cluequest?mode=memory&cache=shared")

	v.SetDefault("log.level", "info")

	v.SetDefault("auth.session_secret", "your-secret-key-change-this-in-production")
}

// Load reads config.yaml from . or ./config. A missing file is fine.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v, false)
}

// LoadFile reads an explicit config file, which must exist.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, true)
}

func load(v *viper.Viper, fileRequired bool) (*Config, error) {
	setDefaults(v)

	// Allow environment variables, e.g. CLUEQUEST_SERVER_PORT
	v.SetEnvPrefix("CLUEQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || fileRequired {
			return nil, err
		}
		// Config file not found, use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
