package loader

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvPrefix is the prefix of environment overrides.
const DefaultEnvPrefix = "TREENAV"

// LoadEnv overrides fields of v from environment variables named
// PREFIX_SECTION_FIELD, as declared by envconfig struct tags. Unset
// variables leave fields untouched.
func LoadEnv(prefix string, v any) error {
	if err := envconfig.Process(prefix, v); err != nil {
		return fmt.Errorf("processing env config: %w", err)
	}
	return nil
}
