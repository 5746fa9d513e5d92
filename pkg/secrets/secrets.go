package secrets

import "fmt"

// Description identifies where a secret lives and tells a human how to
// obtain the value if they don't have it.
type Description struct {
	Scope        string `yaml:"scope" json:"scope"`
	Key          string `yaml:"key" json:"key"`
	Instructions string `yaml:"instructions" json:"instructions"`
}

// String renders the description for error messages and listings. It never
// contains a secret value.
func (d Description) String() string {
	return fmt.Sprintf("scope %q key %q: %s", d.Scope, d.Key, d.Instructions)
}

// RawSecrets is the materialized secret store: scope name to key name to
// value. It is produced by an external loader (a secrets file, the OS
// keyring) and treated as read-only by this package.
type RawSecrets map[string]map[string]string

// Lookup reads the value at (scope, key). A missing scope and a missing key
// both report absence; an empty string stored under the key counts as
// present.
func (r RawSecrets) Lookup(scope, key string) (string, bool) {
	keys, ok := r[scope]
	if !ok {
		return "", false
	}
	value, ok := keys[key]
	return value, ok
}

// Kind is a statically declared secret requirement. Each concrete kind maps
// to exactly one Description. The two implementations are Required and
// Optional.
type Kind interface {
	// Description returns how to look the secret up and how to obtain it.
	Description() Description

	// Validate reports whether the kind can be resolved from raw without
	// exposing the value. Required kinds return a *MissingError when the
	// store lacks their scope/key; Optional kinds always validate.
	Validate(raw RawSecrets) error
}

// Required declares a secret the harness cannot run without.
type Required struct {
	desc Description
}

// NewRequired declares a required secret kind.
func NewRequired(scope, key, instructions string) Required {
	return Required{desc: Description{Scope: scope, Key: key, Instructions: instructions}}
}

// Description implements Kind.
func (k Required) Description() Description { return k.desc }

// Resolve looks the secret up in raw. Absence at either level fails with a
// *MissingError containing exactly this kind's description; there is no
// default value fallback.
func (k Required) Resolve(raw RawSecrets) (Secret, error) {
	value, ok := raw.Lookup(k.desc.Scope, k.desc.Key)
	if !ok {
		return Secret{}, NewMissingError(k.desc)
	}
	return Secret{desc: k.desc, value: value}, nil
}

// Validate implements Kind.
func (k Required) Validate(raw RawSecrets) error {
	if _, ok := raw.Lookup(k.desc.Scope, k.desc.Key); !ok {
		return NewMissingError(k.desc)
	}
	return nil
}

// Injector returns a deferred-resolution handle for this kind.
func (k Required) Injector() Injector[Secret] {
	return Injector[Secret]{kind: k, resolve: k.Resolve}
}

// Optional declares a secret the harness can operate without; consumers
// degrade behavior at the call site when the value is absent.
type Optional struct {
	desc Description
}

// NewOptional declares an optional secret kind.
func NewOptional(scope, key, instructions string) Optional {
	return Optional{desc: Description{Scope: scope, Key: key, Instructions: instructions}}
}

// Description implements Kind.
func (k Optional) Description() Description { return k.desc }

// Resolve looks the secret up in raw. Absence yields an explicitly absent
// OptionalSecret rather than an error; the returned error is always nil and
// exists only so Optional satisfies the same resolution shape as Required.
func (k Optional) Resolve(raw RawSecrets) (OptionalSecret, error) {
	value, ok := raw.Lookup(k.desc.Scope, k.desc.Key)
	return OptionalSecret{desc: k.desc, value: value, present: ok}, nil
}

// Validate implements Kind. Optional kinds always validate.
func (k Optional) Validate(RawSecrets) error { return nil }

// Injector returns a deferred-resolution handle for this kind.
func (k Optional) Injector() Injector[OptionalSecret] {
	return Injector[OptionalSecret]{kind: k, resolve: k.Resolve}
}

// Secret is a resolved required secret. Instances only exist for values that
// were present in the store.
type Secret struct {
	desc  Description
	value string
}

// Description returns the descriptor the secret was resolved from.
func (s Secret) Description() Description { return s.desc }

// Value returns the secret value.
func (s Secret) Value() string { return s.value }

// OptionalSecret is a resolved optional secret, which may be absent.
type OptionalSecret struct {
	desc    Description
	value   string
	present bool
}

// Description returns the descriptor the secret was resolved from.
func (s OptionalSecret) Description() Description { return s.desc }

// Value returns the secret value and whether it was present in the store.
func (s OptionalSecret) Value() (string, bool) { return s.value, s.present }
