// Package config loads the pybin configuration. Layers, lowest to
// highest precedence: embedded defaults, the user config file under
// the XDG config dir, a .pybin.toml next to the scripts root, and
// PYBIN_* environment variables. The resolved Config is passed
// explicitly to the installer; there is no package-level path state.
package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pybin/pkg/errors"
	"github.com/arthur-debert/pybin/pkg/paths"
)

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "PYBIN_"

// Config holds the resolved installer configuration
type Config struct {
	// InstallDir is where executable copies of the scripts are stored
	InstallDir string `koanf:"install_dir"`

	// BinDir is where command aliases (symlinks) are created
	BinDir string `koanf:"bin_dir"`

	// Suffix is the recognized script name suffix
	Suffix string `koanf:"suffix"`
}

// sourceConfig is the subset of settings a scripts root may override
// via its .pybin.toml file
type sourceConfig struct {
	InstallDir string `toml:"install_dir"`
	BinDir     string `toml:"bin_dir"`
	Suffix     string `toml:"suffix"`
}

// LoadOptions controls configuration loading
type LoadOptions struct {
	// Paths supplies the config file locations
	Paths paths.Paths

	// ConfigFile overrides the user config file location (--config flag)
	ConfigFile string
}

// Load resolves the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config file, if it exists
	userConfig := opts.ConfigFile
	if userConfig == "" && opts.Paths != nil {
		userConfig = opts.Paths.UserConfigPath()
	}
	if userConfig != "" {
		if _, err := os.Stat(userConfig); err == nil {
			if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userConfig)
			}
		} else if opts.ConfigFile != "" {
			// An explicitly requested file must exist
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", opts.ConfigFile)
		}
	}

	// 3. Per-scripts-root config, if it exists
	if opts.Paths != nil {
		srcConfig := opts.Paths.SourceConfigPath()
		if data, err := os.ReadFile(srcConfig); err == nil {
			var sc sourceConfig
			if err := gotoml.Unmarshal(data, &sc); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", srcConfig)
			}
			if err := k.Load(confmap.Provider(sourceConfigMap(sc), "."), nil); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge source config")
			}
		}
	}

	// 4. Environment overrides: PYBIN_INSTALL_DIR -> install_dir.
	// Unset and empty variables are skipped so they cannot blank out a
	// lower layer.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// sourceConfigMap converts a sourceConfig to a koanf confmap, keeping
// only the keys the file actually set
func sourceConfigMap(sc sourceConfig) map[string]interface{} {
	m := make(map[string]interface{})
	if sc.InstallDir != "" {
		m["install_dir"] = sc.InstallDir
	}
	if sc.BinDir != "" {
		m["bin_dir"] = sc.BinDir
	}
	if sc.Suffix != "" {
		m["suffix"] = sc.Suffix
	}
	return m
}

// postProcess validates and normalizes the resolved configuration
func postProcess(cfg *Config) error {
	if cfg.InstallDir == "" {
		return errors.New(errors.ErrConfigParse, "install_dir must not be empty")
	}
	if cfg.BinDir == "" {
		return errors.New(errors.ErrConfigParse, "bin_dir must not be empty")
	}
	if cfg.Suffix == "" {
		return errors.New(errors.ErrConfigParse, "suffix must not be empty")
	}

	cfg.InstallDir = paths.ExpandHome(cfg.InstallDir)
	cfg.BinDir = paths.ExpandHome(cfg.BinDir)

	if !strings.HasPrefix(cfg.Suffix, ".") {
		cfg.Suffix = "." + cfg.Suffix
	}

	return nil
}
