package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the single configuration object for the whole process.
// Nothing reads viper (or env) outside of this package.
type Config struct {
	Server struct {
		Address     string `mapstructure:"address"`      // 0.0.0.0
		HTTPPort    string `mapstructure:"http_port"`    // 8080
		CORSOrigins string `mapstructure:"cors_origins"` // "*" or comma-separated list
	} `mapstructure:"server"`

	Database struct {
		Driver string `mapstructure:"driver"` // "sqlite" | "postgres" | "mysql"
		DSN    string `mapstructure:"dsn"`    // sqlite: file path; others: full DSN
	} `mapstructure:"database"`

	Auth struct {
		SecretKey       string `mapstructure:"secret_key"`        // JWT signing key
		TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"` // access token lifetime
		BootstrapUser   string `mapstructure:"bootstrap_user"`    // login pair accepted by /api/auth/login
		BootstrapPass   string `mapstructure:"bootstrap_pass"`
	} `mapstructure:"auth"`

	Logging struct {
		Level  string `mapstructure:"level"`  // trace|debug|info|warning|error|fatal
		Format string `mapstructure:"format"` // text|json
		File   string `mapstructure:"file"`   // log file path, empty — stdout only
	} `mapstructure:"logs"`
}

// Load reads config from env/file with defaults. A .env file in the
// working directory is folded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.address", "0.0.0.0")
	viper.SetDefault("server.http_port", "8080")
	viper.SetDefault("server.cors_origins", "*")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "netbackup.db")

	viper.SetDefault("auth.secret_key", "CHANGE_ME")
	viper.SetDefault("auth.token_ttl_minutes", 30)
	viper.SetDefault("auth.bootstrap_user", "superadmin")
	viper.SetDefault("auth.bootstrap_pass", "superadmin")

	viper.SetDefault("logs.level", "info")
	viper.SetDefault("logs.format", "text")
	viper.SetDefault("logs.file", "")

	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			viper.AddConfigPath(filepath.Join(xdg, "netbackup"))
		}
		viper.AddConfigPath("/etc/netbackup")
	}

	// Config file is optional; env alone is enough.
	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("config read error: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func validate(c *Config) error {
	if strings.TrimSpace(c.Auth.SecretKey) == "" || c.Auth.SecretKey == "CHANGE_ME" {
		return errors.New("auth.secret_key must be set (not empty and not CHANGE_ME)")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return errors.New("auth.token_ttl_minutes must be positive")
	}
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.New("server.address must not be empty")
	}
	if strings.TrimSpace(c.Server.HTTPPort) == "" {
		return errors.New("server.http_port must not be empty")
	}
	if strings.TrimSpace(c.Database.Driver) == "" {
		return errors.New("database.driver must not be empty")
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn must not be empty")
	}
	return nil
}
