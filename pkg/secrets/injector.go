package secrets

// Injector defers resolution of a declared secret. It is created from a kind
// via Required.Injector or Optional.Injector, holds no store, and is safe to
// construct and pass around long before any secrets have been loaded,
// typically at plugin registration time.
//
// Inject performs the lookup against the store supplied at call time. It
// does not cache: calling it twice with the same store repeats the lookup
// and yields equal results. Failures from required kinds propagate verbatim
// as *MissingError; the injector adds no failure mode of its own.
type Injector[S any] struct {
	kind    Kind
	resolve func(RawSecrets) (S, error)
}

// Inject resolves the wrapped kind against raw.
func (i Injector[S]) Inject(raw RawSecrets) (S, error) {
	return i.resolve(raw)
}

// Kind returns the wrapped secret kind.
func (i Injector[S]) Kind() Kind { return i.kind }
