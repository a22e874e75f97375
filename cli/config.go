package cli

import (
	"raff/config"
	"raff/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// LoadConfig reads the config file from the home directory and applies its
// log level. An uninitialized home directory yields the default config, so
// the codec commands work before raff init has been run.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, err
	}

	cfg := new(config.Config)
	if exists {
		cfg, err = config.ReadConfigFile(homeDir)
		if err != nil {
			return nil, err
		}
	} else {
		*cfg = config.DefaultConfig
	}

	level, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing log level")
	}
	log.SetLevel(level)
	return cfg, nil
}

// GetFormat returns the validated --format flag.
func GetFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString(FlagFormat)
	if err != nil {
		return "", err
	}
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", errors.Errorf("invalid output format %q", format)
	}
}
