package client

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the POS terminal configuration, read from a yaml file.
type Config struct {
	Gateway struct {
		BaseURL    string `yaml:"baseURL"`
		TimeoutSec int    `yaml:"timeoutSec"`
	} `yaml:"gateway"`
}

func (c *Config) Timeout() time.Duration {
	sec := c.Gateway.TimeoutSec
	if sec <= 0 {
		sec = 10
	}
	return time.Duration(sec) * time.Second
}

func ValidateConfig(conf *Config) error {
	if conf.Gateway.BaseURL == "" {
		return errors.New("gateway.baseURL is required")
	}
	if conf.Gateway.TimeoutSec < 0 {
		return errors.New("gateway.timeoutSec must be >= 0")
	}
	return nil
}

func ParseConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Config
	if err := yaml.Unmarshal(file, &conf); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
