package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/arthur-debert/notifyrules/pkg/logging"
	"github.com/arthur-debert/notifyrules/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NOTIFYRULES_GLOBAL_"

// DefaultPath returns $XDG_CONFIG_HOME/notifyrules/rules.toml.
func DefaultPath() string {
	return paths.RulesFile()
}

// Load reads the configuration layered as defaults, file, environment. An
// empty path means DefaultPath, which may be missing; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	defer logging.LogOperationStart(logger, "load")()
	k := koanf.New(".")

	// 1. Global settings
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"global.verbosity": 0,
		"global.disable":   []string{},
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to seed global settings")
	}

	// 2. Embedded urgency sections
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 3. User file
	explicit := path != ""
	if explicit {
		path = paths.ExpandHome(path)
	} else {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded rule file")
	} else if explicit || !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path).
			WithDetail("path", path)
	} else {
		logger.Debug().Str("path", path).Msg("No rule file, using defaults")
		path = ""
	}

	// 4. Environment
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return "global." + strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return fromKoanf(k, path)
}

func fromKoanf(k *koanf.Koanf, path string) (*Config, error) {
	cfg := &Config{Path: path}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg.Global,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("global", &cfg.Global, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid [global] settings")
	}

	if err := cfg.readSections(k); err != nil {
		return nil, err
	}
	if err := cfg.readRules(k.Get("rule")); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parserFor picks the koanf parser from the file extension. TOML is the
// default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
