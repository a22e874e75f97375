package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Pack     PackConfig    `mapstructure:"pack"`
	Inspect  InspectConfig `mapstructure:"inspect"`
	Extract  ExtractConfig `mapstructure:"extract"`
}

type PackConfig struct {
	DefaultTag string `mapstructure:"default_tag"`
}

type InspectConfig struct {
	Workers int  `mapstructure:"workers"`
	Record  bool `mapstructure:"record"`
}

type ExtractConfig struct {
	MaxPayloadBytes int64 `mapstructure:"max_payload_bytes"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
