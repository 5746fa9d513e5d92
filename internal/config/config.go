package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	pberrors "github.com/plugbench/plugbench/internal/errors"
	"github.com/plugbench/plugbench/internal/logging"
	"github.com/plugbench/plugbench/pkg/secrets"
)

// Config holds the runtime configuration
type Config struct {
	Path       string
	Logger     *logging.Logger
	UseKeyring bool

	// Secrets is the materialized store loaded from Path (and optionally
	// the OS keyring). Read-only after Load.
	Secrets secrets.RawSecrets
}

// definition mirrors the secrets.yaml structure: a single top-level mapping
// of scope to key to value.
type definition struct {
	Secrets map[string]map[string]string `yaml:"secrets"`
}

// secretsSchema validates the parsed secrets file shape before it is handed
// to the typed unmarshal: two levels of string-keyed mappings with string
// leaves, nothing else.
const secretsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["secrets"],
  "additionalProperties": false,
  "properties": {
    "secrets": {
      "type": ["object", "null"],
      "additionalProperties": {
        "type": ["object", "null"],
        "additionalProperties": {"type": "string"}
      }
    }
  }
}`

// Load reads and parses the secrets file into c.Secrets. The raw file bytes
// are held in a locked memguard buffer and wiped once parsing finishes.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return pberrors.ConfigError{
				Field:      "path",
				Value:      c.Path,
				Message:    "secrets file not found",
				Suggestion: "Run 'plugbench init' to create a template listing every secret this installation needs",
			}
		}
		return pberrors.UserError{
			Message:    "Failed to read secrets file",
			Details:    err.Error(),
			Suggestion: "Check file permissions and path",
			Err:        err,
		}
	}

	// NewBufferFromBytes wipes data; the only plaintext copy now lives in
	// locked memory until Destroy.
	buf := memguard.NewBufferFromBytes(data)
	defer buf.Destroy()

	var doc map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		return pberrors.ConfigError{
			Message:    "invalid YAML syntax in secrets file",
			Suggestion: "Check for indentation errors, missing quotes, or invalid characters",
		}
	}

	if err := validateShape(doc); err != nil {
		return pberrors.ConfigError{
			Field:      "secrets",
			Message:    err.Error(),
			Suggestion: "The file must contain a single 'secrets:' mapping of scope to key to string value",
		}
	}

	var def definition
	if err := yaml.Unmarshal(buf.Bytes(), &def); err != nil {
		return pberrors.ConfigError{
			Message:    "invalid secrets file structure",
			Suggestion: "The file must contain a single 'secrets:' mapping of scope to key to string value",
		}
	}

	c.Secrets = secrets.RawSecrets(def.Secrets)
	if c.Secrets == nil {
		c.Secrets = secrets.RawSecrets{}
	}
	if c.Logger != nil {
		c.Logger.Debug("loaded %d secret scope(s) from %s", len(c.Secrets), c.Path)
	}
	return nil
}

// validateShape checks the parsed document against the embedded JSON schema.
func validateShape(doc map[string]interface{}) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(secretsSchema),
		gojsonschema.NewBytesLoader(jsonData),
	)
	if err != nil {
		return err
	}

	if !result.Valid() {
		var messages []string
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return fmt.Errorf("schema validation failed: %s", strings.Join(messages, "; "))
	}

	return nil
}
