package rules

import (
	"sync"

	"github.com/arthur-debert/notifyrules/pkg/errors"
	"github.com/arthur-debert/notifyrules/pkg/logging"
	"github.com/arthur-debert/notifyrules/pkg/notification"
	"github.com/arthur-debert/notifyrules/pkg/registry"
	"github.com/rs/zerolog"
)

// Store owns the configured rules in declaration order. Declaration order is
// also override priority: when several rules match, the last one to set a
// field wins.
//
// Reads (Get, ApplyAll, Trace) share a lock; Add, Replace and Close take it
// exclusively, so a reload never interleaves with a notification being
// processed.
type Store struct {
	mu      sync.RWMutex
	rules   registry.Registry[*Rule]
	fields  *Registry
	metrics *Metrics
	logger  zerolog.Logger
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithRegistry evaluates rules against reg instead of the default Fields.
func WithRegistry(reg *Registry) StoreOption {
	return func(s *Store) { s.fields = reg }
}

// WithMetrics records match and override counters on m.
func WithMetrics(m *Metrics) StoreOption {
	return func(s *Store) { s.metrics = m }
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		rules:  registry.New[*Rule](),
		fields: Fields,
		logger: logging.GetLogger("rules.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends r. Rule names are unique.
func (s *Store) Add(r *Rule) error {
	if r == nil {
		return errors.New(errors.ErrInvalidInput, "cannot add a nil rule")
	}
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rules.Register(r.Name, r); err != nil {
		return err
	}
	s.logger.Debug().Str("rule", r.Name).Int("position", s.rules.Count()-1).Msg("Rule added")
	return nil
}

// Get returns the rule called name. A miss is not an error.
func (s *Store) Get(name string) (*Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules.Lookup(name)
}

// Rules returns the rules in declaration order.
func (s *Store) Rules() []*Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules.Values()
}

// Len is the number of rules.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules.Count()
}

// Replace swaps the whole rule set in one step. If rules is invalid the
// current set is kept.
func (s *Store) Replace(rules []*Rule) error {
	next := registry.New[*Rule]()
	for _, r := range rules {
		if r == nil {
			return errors.New(errors.ErrInvalidInput, "cannot add a nil rule")
		}
		if err := r.Validate(); err != nil {
			return err
		}
		if err := next.Register(r.Name, r); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.rules = next
	s.mu.Unlock()

	s.logger.Info().Int("ruleCount", len(rules)).Msg("Rules replaced")
	return nil
}

// Close frees every rule and empties the store.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rules.Values() {
		r.Free()
	}
	s.rules.Clear()
}

// ApplyAll runs every matching rule against n, in store order.
func (s *Store) ApplyAll(n *notification.Notification) {
	s.run(n, false)
}

// Trace is ApplyAll with provenance: every override is recorded in
// n.Origins. It returns the names of the rules that matched.
func (s *Store) Trace(n *notification.Notification) []string {
	return s.run(n, true)
}

func (s *Store) run(n *notification.Notification, save bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []string
	for _, r := range s.rules.Values() {
		s.metrics.evaluated()
		if !s.fields.Matches(r, n) {
			continue
		}

		s.metrics.matched(r.Name)
		written := s.fields.apply(r, n, save, s.metrics.overridden)
		s.logger.Trace().
			Str("rule", r.Name).
			Str("appname", n.AppName).
			Int("written", written).
			Msg("Rule matched")

		if save {
			matched = append(matched, r.Name)
		}
	}
	return matched
}
