// Package together registers the Together inference API credential and a
// benchmark suite that prompts models served through it.
package together

import (
	"github.com/plugbench/plugbench/pkg/benchmark"
	"github.com/plugbench/plugbench/pkg/secrets"
)

// APIKey must be present for the suite to run.
var APIKey = secrets.Register(secrets.NewRequired(
	"together", "api_key",
	"Create an account at https://api.together.xyz and generate an API key under Settings.",
))

func init() {
	benchmark.Register(New())
}

// Suite runs prompt/response benchmarks against models served by the
// Together API. The credential is declared at construction time and resolved
// in Setup, once a secret store has been loaded.
type Suite struct {
	apiKey secrets.Injector[secrets.Secret]
	token  string
}

// New constructs the suite. No secrets are read here.
func New() *Suite {
	return &Suite{apiKey: APIKey.Injector()}
}

// Metadata implements benchmark.Benchmark.
func (s *Suite) Metadata() benchmark.Metadata {
	return benchmark.Metadata{
		Name:        "together",
		Description: "Prompt/response benchmarks against Together-hosted models",
	}
}

// Setup resolves the API credential. A store without it fails with a
// missing-secrets error naming this suite's descriptor.
func (s *Suite) Setup(raw secrets.RawSecrets) error {
	sec, err := s.apiKey.Inject(raw)
	if err != nil {
		return err
	}
	s.token = sec.Value()
	return nil
}

// Ready reports whether Setup has resolved the API credential.
func (s *Suite) Ready() bool {
	return s.token != ""
}
