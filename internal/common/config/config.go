package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config is the application configuration.
type Config struct {
	App      AppConfig      `json:"app"`
	Storage  StorageConfig  `json:"storage"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	Mongo    MongoConfig    `json:"mongo"`
	Consul   ConsulConfig   `json:"consul"`
	Assist   AssistConfig   `json:"assist"`
	Jaeger   JaegerConfig   `json:"jaeger"`
	Log      LogConfig      `json:"log"`
}

// AppConfig names the running tool (used as service name for tracing).
type AppConfig struct {
	Name string `json:"name"`
}

// StorageConfig selects the slot-store backend.
type StorageConfig struct {
	Backend string `json:"backend"` // memory, file, redis, mysql, mongo
	Dir     string `json:"dir"`     // file backend: slot directory
	Prefix  string `json:"prefix"`  // redis backend: key prefix
}

// DatabaseConfig is the MySQL backend configuration.
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	MaxIdle  int    `json:"max_idle"`
	MaxOpen  int    `json:"max_open"`
}

// RedisConfig is the Redis backend configuration.
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// MongoConfig is the MongoDB backend configuration.
type MongoConfig struct {
	Host string `json:"host"` // host:port
}

// ConsulConfig locates the Consul agent for KV-sourced configuration.
type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// AssistConfig configures the generation-service gateway.
// The API key can also arrive via the RJM_ASSIST_API_KEY environment
// variable, which wins over the file value.
type AssistConfig struct {
	Endpoint       string  `json:"endpoint"`
	Model          string  `json:"model"`
	APIKey         string  `json:"api_key"`
	Temperature    float64 `json:"temperature"`
	TimeoutSeconds int     `json:"timeout_seconds"`
}

// JaegerConfig configures tracing.
type JaegerConfig struct {
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // sample rate 0.0-1.0
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, file
	Path   string `json:"path"`   // log file path
}

const assistKeyEnv = "RJM_ASSIST_API_KEY"

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig loads the JSON config file once. A missing file falls
// back to the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = &Config{}
		if _, err = os.Stat(configPath); os.IsNotExist(err) {
			logrus.Warnf("Config file not found: %s, using default config", configPath)
			globalConfig = defaultConfig()
			err = nil
			applyEnv(globalConfig)
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}

		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
			return
		}
		applyEnv(globalConfig)
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

// GetConfig returns the global configuration.
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(assistKeyEnv); v != "" {
		cfg.Assist.APIKey = v
	}
}

// defaultConfig is the development-environment configuration.
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: "rjm-site",
		},
		Storage: StorageConfig{
			Backend: "file",
			Dir:     "data",
			Prefix:  "rjm",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Password: "root",
			Database: "rjm_site",
			MaxIdle:  10,
			MaxOpen:  100,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			Password: "",
			DB:       0,
		},
		Mongo: MongoConfig{
			Host: "localhost:27017",
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
		},
		Assist: AssistConfig{
			Endpoint:       "https://generativelanguage.googleapis.com/v1beta",
			Model:          "gemini-3-flash-preview",
			APIKey:         "",
			Temperature:    0.7,
			TimeoutSeconds: 30,
		},
		Jaeger: JaegerConfig{
			Endpoint: "localhost:6831", // agent host:port
			Sampler:  1.0,
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "text",
			Output: "stdout",
			Path:   "logs/app.log",
		},
	}
}
