// Package secrets provides the typed registry, deferred injection, and
// validation machinery for secret values needed by benchmark plugins.
//
// A plugin declares each secret it needs as a kind, a value bundling the
// secret's storage location (scope and key) with human instructions for
// obtaining it, and registers the kind at init time:
//
//	var APIKey = secrets.Register(secrets.NewRequired(
//	    "together", "api_key",
//	    "Create an API key at https://api.together.xyz/settings/api-keys."))
//
// Registration happens long before any secret values exist in the process.
// Components that need the value hold an Injector, created from the kind,
// and resolve it later once a store has been loaded:
//
//	inj := APIKey.Injector()
//	// ... store loading happens elsewhere ...
//	sec, err := inj.Inject(raw)
//
// Required kinds fail resolution with a *MissingError naming the descriptor;
// Optional kinds resolve to an absent value instead of failing. Callers that
// resolve many kinds in one pass collect the individual failures and merge
// them with Combine so the operator sees everything that is missing in a
// single report.
//
// All operations are pure, in-memory lookups against an immutable RawSecrets
// mapping; kinds, descriptors, and resolved values are immutable and safe for
// concurrent use.
package secrets
