// Package benchmark defines the plugin boundary of the harness: benchmark
// suites register themselves at init time, declare the secrets they need as
// injectors, and resolve them during Setup once a secret store has been
// loaded. Dataset fetching and prompt construction are entirely the plugin's
// concern; the harness only drives registration and secret resolution.
package benchmark

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/plugbench/plugbench/pkg/secrets"
)

// Metadata describes a benchmark plugin.
type Metadata struct {
	Name        string
	Description string
}

// Benchmark is implemented by plugin test suites. Implementations are
// constructed at registration time, before any secrets exist in the process,
// so constructors must only declare secret requirements (by holding
// secrets.Injector values) and defer all resolution to Setup.
type Benchmark interface {
	// Metadata returns the benchmark's name and description.
	Metadata() Metadata

	// Setup resolves the benchmark's secret requirements against raw and
	// prepares it to run. Missing required secrets surface as
	// *secrets.MissingError.
	Setup(raw secrets.RawSecrets) error
}

// Registry tracks registered benchmarks.
type Registry struct {
	mu         sync.RWMutex
	benchmarks []Benchmark
}

// NewRegistry creates an empty benchmark registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a benchmark to the registry.
func (r *Registry) Register(b Benchmark) {
	r.mu.Lock()
	r.benchmarks = append(r.benchmarks, b)
	r.mu.Unlock()
}

// All returns the registered benchmarks sorted by name.
func (r *Registry) All() []Benchmark {
	r.mu.RLock()
	benchmarks := make([]Benchmark, len(r.benchmarks))
	copy(benchmarks, r.benchmarks)
	r.mu.RUnlock()

	sort.Slice(benchmarks, func(i, j int) bool {
		return benchmarks[i].Metadata().Name < benchmarks[j].Metadata().Name
	})
	return benchmarks
}

// SetupAll resolves every registered benchmark against raw. Missing-secret
// failures from independent benchmarks are collected and merged into a
// single *secrets.MissingError so the operator sees the complete list at
// once; any other setup failure aborts immediately.
func (r *Registry) SetupAll(raw secrets.RawSecrets) error {
	var missing []*secrets.MissingError
	for _, b := range r.All() {
		err := b.Setup(raw)
		if err == nil {
			continue
		}
		var merr *secrets.MissingError
		if errors.As(err, &merr) {
			missing = append(missing, merr)
			continue
		}
		return fmt.Errorf("benchmark %s: setup failed: %w", b.Metadata().Name, err)
	}
	if len(missing) == 0 {
		return nil
	}
	return secrets.Combine(missing...)
}

var defaultRegistry = NewRegistry()

// Register adds a benchmark to the process-wide registry. Plugins call this
// from init.
func Register(b Benchmark) {
	defaultRegistry.Register(b)
}

// All returns the process-wide registry's benchmarks sorted by name.
func All() []Benchmark { return defaultRegistry.All() }

// SetupAll resolves every benchmark in the process-wide registry.
func SetupAll(raw secrets.RawSecrets) error { return defaultRegistry.SetupAll(raw) }
