// Package config loads deskd configuration from file and environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server" mapstructure:"server"`
	DataAPI DataAPIConfig `yaml:"data_api" json:"data_api" mapstructure:"data_api"`
	Pricer  PricerConfig  `yaml:"pricer" json:"pricer" mapstructure:"pricer"`
	Redis   RedisConfig   `yaml:"redis" json:"redis" mapstructure:"redis"`
	Log     LogConfig     `yaml:"log" json:"log" mapstructure:"log"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string        `yaml:"host" json:"host" mapstructure:"host"`
	Port            int           `yaml:"port" json:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins" json:"allowed_origins" mapstructure:"allowed_origins"`
}

// DataAPIConfig represents the headless data API endpoint configuration
type DataAPIConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// PricerConfig represents the external pricing engine configuration
type PricerConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// RedisConfig represents the reference-data cache configuration
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr" mapstructure:"addr"`
	Password string        `yaml:"password" json:"password" mapstructure:"password"`
	DB       int           `yaml:"db" json:"db" mapstructure:"db"`
	TTL      time.Duration `yaml:"ttl" json:"ttl" mapstructure:"ttl"`
	Enabled  bool          `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// Addr returns the host:port the HTTP server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8085)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("data_api.base_url", "http://localhost:1337")
	v.SetDefault("data_api.timeout", 10*time.Second)

	v.SetDefault("pricer.base_url", "http://localhost:9100")
	v.SetDefault("pricer.timeout", 15*time.Second)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("redis.enabled", true)

	v.SetDefault("log.level", "info")
}

// Load reads configuration from config.yaml (working directory or /etc/deskd)
// and DESKD_* environment variables. A missing file is not an error; defaults
// and environment cover everything.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/deskd")

	v.SetEnvPrefix("DESKD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
