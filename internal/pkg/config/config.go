package config

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the server.
// The `mapstructure` tags are used to map the fields to the viper configuration.
// Every value comes from the defaults below: the server reads no config file,
// no environment variable and no flag.
type Config struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ServerName      string        `mapstructure:"server-name"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`

	// Logging
	LogLevel       string `mapstructure:"log-level"`
	NoColorLogging bool   `mapstructure:"no-color"`
	StdoutLogging  bool   `mapstructure:"stdout-logging"`
}

var (
	config *Config
	once   sync.Once
)

var defaults = map[string]any{
	"host":             "127.0.0.1",
	"port":             8080,
	"server-name":      "VegetaTestServer/1.0",
	"shutdown-timeout": 2 * time.Second,
	"log-level":        "info",
	"no-color":         false,
	"stdout-logging":   false,
}

// InitConfig initializes the configuration from the fixed defaults.
func InitConfig() error {
	var err error
	once.Do(func() {
		config = &Config{}

		for key, value := range defaults {
			viper.SetDefault(key, value)
		}

		err = viper.Unmarshal(config)
	})
	return err
}

// Get returns the config struct
func Get() *Config {
	return config
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
