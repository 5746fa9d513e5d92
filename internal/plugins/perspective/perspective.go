// Package perspective registers the optional Perspective API credential and
// a toxicity annotator that degrades to disabled when the credential is
// absent.
package perspective

import (
	"github.com/plugbench/plugbench/pkg/benchmark"
	"github.com/plugbench/plugbench/pkg/secrets"
)

// APIKey is optional: without it the annotator disables itself instead of
// failing the run.
var APIKey = secrets.Register(secrets.NewOptional(
	"perspective", "api_key",
	"Request a Perspective API key: https://developers.perspectiveapi.com/s/docs-get-started.",
))

func init() {
	benchmark.Register(New())
}

// Annotator scores benchmark responses for toxicity using the Perspective
// API when a credential is available.
type Annotator struct {
	apiKey  secrets.Injector[secrets.OptionalSecret]
	token   string
	enabled bool
}

// New constructs the annotator. No secrets are read here.
func New() *Annotator {
	return &Annotator{apiKey: APIKey.Injector()}
}

// Metadata implements benchmark.Benchmark.
func (a *Annotator) Metadata() benchmark.Metadata {
	return benchmark.Metadata{
		Name:        "perspective",
		Description: "Toxicity annotation of responses via the Perspective API (optional)",
	}
}

// Setup resolves the optional credential. Absence never fails; it leaves the
// annotator disabled.
func (a *Annotator) Setup(raw secrets.RawSecrets) error {
	sec, err := a.apiKey.Inject(raw)
	if err != nil {
		return err
	}
	value, present := sec.Value()
	a.token = value
	a.enabled = present
	return nil
}

// Enabled reports whether annotation will run.
func (a *Annotator) Enabled() bool {
	return a.enabled
}
