package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env    string       `yaml:"env" env:"ENV" env-default:"local"`
	Http   HTTPConfig   `yaml:"http"`
	Daraja DarajaConfig `yaml:"daraja"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// DarajaConfig carries everything an outbound gateway call needs. Credentials
// come from the environment only; the yaml file holds the non-secret parts.
type DarajaConfig struct {
	BaseURL            string        `yaml:"base_url" env:"MPESA_BASE_URL"`
	ConsumerKey        string        `env:"MPESA_CONSUMER_KEY"`
	ConsumerSecret     string        `env:"MPESA_CONSUMER_SECRET"`
	InitiatorName      string        `env:"MPESA_INITIATOR_NAME"`
	SecurityCredential string        `env:"MPESA_SECURITY_CREDENTIAL"`
	Shortcode          string        `env:"MPESA_SHORTCODE"`
	CallbackBaseURL    string        `yaml:"callback_base_url" env:"BASE_URL"`
	Timeout            time.Duration `yaml:"timeout" env-default:"30s"`
}

func LoadConfig() (*Config, error) {
	configPath := fetchConfigPath()

	if configPath == "" {
		return nil, fmt.Errorf("config file is empty")
	}

	return LoadPath(configPath)
}

func LoadPath(configPath string) (*Config, error) {
	// .env is optional outside local runs
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %v", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read the config: %w", err)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to configPath")
	flag.Parse()

	if configPath == "" {
		configPath = "local.yaml"
	}
	return configPath
}
