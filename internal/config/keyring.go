package config

import (
	"errors"

	"github.com/zalando/go-keyring"

	pberrors "github.com/plugbench/plugbench/internal/errors"
	"github.com/plugbench/plugbench/pkg/secrets"
)

// KeyringReader mirrors the subset of the OS keyring used to fill absent
// secrets. The system implementation talks to Secret Service, Keychain, or
// Credential Manager depending on the platform.
type KeyringReader interface {
	Get(service, account string) (string, error)
}

type systemKeyring struct{}

func (systemKeyring) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}

// Keyring entries are stored under "plugbench/<scope>" with the key as the
// account name.
const keyringServicePrefix = "plugbench/"

// FillFromKeyring consults the OS keyring for every descriptor absent from
// the loaded store and merges found values in. Entries the keyring does not
// hold are skipped; any other keyring failure aborts the fill.
func (c *Config) FillFromKeyring(descs []secrets.Description) error {
	return c.fillFromKeyring(systemKeyring{}, descs)
}

func (c *Config) fillFromKeyring(kr KeyringReader, descs []secrets.Description) error {
	for _, d := range descs {
		if _, ok := c.Secrets.Lookup(d.Scope, d.Key); ok {
			continue
		}

		value, err := kr.Get(keyringServicePrefix+d.Scope, d.Key)
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				if c.Logger != nil {
					c.Logger.Debug("keyring has no entry for %s/%s", d.Scope, d.Key)
				}
				continue
			}
			return pberrors.UserError{
				Message:    "Failed to read from the OS keyring",
				Details:    err.Error(),
				Suggestion: "Check that a keyring service is available, or provide the value in the secrets file instead",
				Err:        err,
			}
		}

		if c.Secrets == nil {
			c.Secrets = secrets.RawSecrets{}
		}
		if c.Secrets[d.Scope] == nil {
			c.Secrets[d.Scope] = make(map[string]string)
		}
		c.Secrets[d.Scope][d.Key] = value
		if c.Logger != nil {
			c.Logger.Debug("filled %s/%s from the OS keyring", d.Scope, d.Key)
		}
	}
	return nil
}
