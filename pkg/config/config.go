package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/uniqr/pkg/errors"
	"github.com/arthur-debert/uniqr/pkg/logging"
	"github.com/arthur-debert/uniqr/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Configuration keys
const (
	KeyInput  = "input"
	KeyOutput = "output"
	KeyCount  = "count"
)

// StdinMarker is the input path that selects standard input
const StdinMarker = "-"

// EnvPrefix is the prefix of environment variables read by Resolve
const EnvPrefix = "UNIQR_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the resolved configuration for one run.
type Config struct {
	// InFile is the input path, or StdinMarker for standard input.
	InFile string `koanf:"input" toml:"input"`
	// OutFile is the output path; empty means standard output.
	OutFile string `koanf:"output" toml:"output"`
	// Count enables count-prefixed output.
	Count bool `koanf:"count" toml:"count"`
}

// Options controls where Resolve looks for values.
type Options struct {
	// ConfigFile is an explicit user config file. When empty the file from
	// paths.ConfigFile is used if it exists.
	ConfigFile string
	// Overrides holds values given on the command line, keyed by KeyInput,
	// KeyOutput and KeyCount. Only keys the user actually set belong here.
	Overrides map[string]interface{}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Resolve layers defaults, the user config file, the environment and
// command-line overrides into a validated Config.
func Resolve(opts Options) (Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Load user config file
	configPath, explicit := userConfigPath(opts.ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return Config{}, errors.WithDetail(
				errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", configPath),
				"path", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	} else if explicit {
		return Config{}, errors.WithDetail(
			errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config file %s", configPath),
			"path", configPath)
	}

	// 3. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Load command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load command-line arguments")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}

	if err := postProcessConfig(&cfg); err != nil {
		return Config{}, err
	}

	logger.Debug().
		Str("input", cfg.InFile).
		Str("output", cfg.OutFile).
		Bool("count", cfg.Count).
		Msg("Configuration resolved")

	return cfg, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// UsesStdin reports whether the configuration reads standard input
func (c Config) UsesStdin() bool {
	return c.InFile == StdinMarker
}

// UsesStdout reports whether the configuration writes standard output
func (c Config) UsesStdout() bool {
	return c.OutFile == ""
}

func userConfigPath(explicit string) (string, bool) {
	if explicit != "" {
		return paths.ExpandHome(explicit), true
	}
	if fromEnv := os.Getenv(paths.EnvUniqrConfig); fromEnv != "" {
		return paths.ExpandHome(fromEnv), true
	}
	return paths.ConfigFile(), false
}

// envKey maps UNIQR_COUNT to "count". Variables that are not configuration
// keys (UNIQR_CONFIG, UNIQR_CONFIG_DIR) map to "" and are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch key {
	case KeyInput, KeyOutput, KeyCount:
		return key
	default:
		return ""
	}
}

func postProcessConfig(cfg *Config) error {
	if cfg.InFile == "" {
		return errors.New(errors.ErrConfigValid, "input path must not be empty")
	}
	if cfg.InFile != StdinMarker {
		cfg.InFile = paths.ExpandHome(cfg.InFile)
	}
	cfg.OutFile = paths.ExpandHome(cfg.OutFile)
	return nil
}
