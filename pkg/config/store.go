package config

import (
	"github.com/arthur-debert/notifyrules/pkg/logging"
	"github.com/arthur-debert/notifyrules/pkg/rules"
)

// Bind turns cfg into rules, in evaluation order.
func Bind(cfg *Config) ([]*rules.Rule, error) {
	triples, err := cfg.Triples()
	if err != nil {
		return nil, err
	}
	return rules.Fields.BindAll(triples)
}

// BuildStore binds cfg into a new store.
func BuildStore(cfg *Config, opts ...rules.StoreOption) (*rules.Store, error) {
	rs, err := Bind(cfg)
	if err != nil {
		return nil, err
	}
	s := rules.NewStore(opts...)
	if err := s.Replace(rs); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload reads path again and swaps the result into s. On any error s keeps
// its current rules.
//
// Reload is library API for a long-running daemon (for example on SIGHUP or a
// file watch); the one-shot CLI commands build a fresh store instead.
func Reload(s *rules.Store, path string) error {
	logger := logging.GetLogger("config")
	defer logging.LogOperationStart(logger, "reload")()

	cfg, err := Load(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Reload failed, keeping current rules")
		return err
	}
	rs, err := Bind(cfg)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Reload failed, keeping current rules")
		return err
	}
	if err := s.Replace(rs); err != nil {
		return err
	}
	logger.Info().Str("path", cfg.Path).Int("ruleCount", len(rs)).Msg("Rules reloaded")
	return nil
}
