package storage

import (
	"context"
	"fmt"

	"github.com/brsaude/patient-intake/internal/patients"
)

// Repository persists the patient record set as one unit. Load returns
// an empty set for a missing or corrupt store so the form stays usable;
// Save failures always propagate.
//
// Load-mutate-save is a read-modify-write cycle with no cross-process
// coordination: two writers against the same backend can interleave and
// the last Save wins. Callers that need stronger guarantees must
// serialize writes themselves.
type Repository interface {
	Load(ctx context.Context) ([]patients.Patient, error)
	Save(ctx context.Context, set []patients.Patient) error
}

// ConfigError marks a backend as unreachable or misconfigured, as
// opposed to a validation failure. Remediation tells the operator how
// to fix it and is safe to surface in an error response.
type ConfigError struct {
	Backend     string
	Remediation string
	Err         error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s storage: %s: %v", e.Backend, e.Remediation, e.Err)
	}
	return fmt.Sprintf("%s storage: %s", e.Backend, e.Remediation)
}

func (e *ConfigError) Unwrap() error { return e.Err }
