package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Dirs     DirsConfig     `mapstructure:"dirs"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DirsConfig struct {
	Data    string `mapstructure:"data"`
	Logs    string `mapstructure:"logs"`
	Reports string `mapstructure:"reports"`
	Charts  string `mapstructure:"charts"`
}

type AuthConfig struct {
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type AnalysisConfig struct {
	LowCostThreshold float64 `mapstructure:"low_cost_threshold"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("database.path", "data/sales.db")
	v.SetDefault("dirs.data", "data")
	v.SetDefault("dirs.logs", "logs")
	v.SetDefault("dirs.reports", "reports")
	v.SetDefault("dirs.charts", "charts")
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "admin")
	v.SetDefault("auth.jwt_secret", "local-dev-secret")
	v.SetDefault("analysis.low_cost_threshold", 20.0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "logs/sales.log")
}

// Load reads the configuration from the given file (optional), environment
// variables prefixed with SALES_, and built-in defaults, in that order of
// precedence. It also creates the data, logs, reports and charts directories.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults apply.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.ensureDirs(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) ensureDirs() error {
	dirs := []string{c.Dirs.Data, c.Dirs.Logs, c.Dirs.Reports, c.Dirs.Charts, filepath.Dir(c.Database.Path)}
	for _, d := range dirs {
		if d == "" || d == "." {
			continue
		}
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}
	return nil
}
