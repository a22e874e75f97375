package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"raff/log"

	"github.com/pkg/errors"
)

const ConfigFilename = "config.toml"

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Pack: PackConfig{
		DefaultTag: "da",
	},
	Inspect: InspectConfig{
		Workers: 4,
		Record:  true,
	},
	Extract: ExtractConfig{
		MaxPayloadBytes: 64 * 1024 * 1024,
	},
}

const defaultConfigTemplateText = `# raff Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures how raff extracts chunk payloads.
[extract]
  # Sets the largest chunk payload raff will load into memory. Chunks
  # declaring a larger size are reported as errors. 0 disables the limit.
  max_payload_bytes = {{.Extract.MaxPayloadBytes}}

# Configures how raff inspects existing containers. Inspection streams
# payloads and never loads them into memory.
[inspect]
  # Records every inspected container in the local catalog.
  record = {{.Inspect.Record}}
  # Sets how many containers are inspected concurrently.
  workers = {{.Inspect.Workers}}

# Configures how raff writes new containers.
[pack]
  # Sets the tag used for data read from stdin. Tags are exactly two
  # characters from a-z, A-Z, 0-9 and _.
  default_tag = "{{.Pack.DefaultTag}}"
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFilename), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFilename), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
