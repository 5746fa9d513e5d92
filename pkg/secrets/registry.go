package secrets

import (
	"errors"
	"sort"
	"sync"
)

// Registry tracks every declared secret kind. Plugins register kinds as an
// init-time side effect; the registry can then enumerate all descriptors for
// presentation (what credentials does this installation need) and audit a
// loaded store in one pass.
type Registry struct {
	mu    sync.RWMutex
	kinds []Kind
}

// NewRegistry creates an empty registry. Most code uses the process-wide
// default via the package-level functions; independent registries exist for
// tests.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a kind to the registry. Kinds with equal (scope, key) pairs
// may be registered by independent plugins; no deduplication is applied.
func (r *Registry) Register(k Kind) {
	r.mu.Lock()
	r.kinds = append(r.kinds, k)
	r.mu.Unlock()
}

// Kinds returns a copy of the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, len(r.kinds))
	copy(kinds, r.kinds)
	return kinds
}

// Descriptions returns the descriptor of every registered kind, sorted by
// scope then key so display order is stable across runs. Registration order
// depends on package initialization order and is not meaningful.
func (r *Registry) Descriptions() []Description {
	kinds := r.Kinds()
	descs := make([]Description, 0, len(kinds))
	for _, k := range kinds {
		descs = append(descs, k.Description())
	}
	sort.Slice(descs, func(i, j int) bool {
		if descs[i].Scope != descs[j].Scope {
			return descs[i].Scope < descs[j].Scope
		}
		return descs[i].Key < descs[j].Key
	})
	return descs
}

// Missing validates every registered kind against raw and merges all
// failures into a single *MissingError, so an operator fixing configuration
// sees the complete list in one report. Returns nil when nothing is missing.
func (r *Registry) Missing(raw RawSecrets) error {
	var missing []*MissingError
	for _, k := range r.Kinds() {
		if err := k.Validate(raw); err != nil {
			var merr *MissingError
			if errors.As(err, &merr) {
				missing = append(missing, merr)
			} else {
				return err
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return Combine(missing...)
}

var defaultRegistry = NewRegistry()

// Register adds kind to the process-wide registry and returns it unchanged,
// so a plugin can declare and register in a single statement:
//
//	var APIKey = secrets.Register(secrets.NewRequired("together", "api_key", "..."))
func Register[K Kind](kind K) K {
	defaultRegistry.Register(kind)
	return kind
}

// Kinds returns every kind in the process-wide registry.
func Kinds() []Kind { return defaultRegistry.Kinds() }

// Descriptions returns the descriptors of the process-wide registry, sorted
// by scope then key.
func Descriptions() []Description { return defaultRegistry.Descriptions() }

// Missing audits raw against the process-wide registry.
func Missing(raw RawSecrets) error { return defaultRegistry.Missing(raw) }
