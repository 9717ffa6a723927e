package config

import (
	"fmt"

	"emperror.dev/errors"
	validation "github.com/go-ozzo/ozzo-validation"
)

// ErrMissingToken indicates that no GitHub access token was present in the
// environment when the configuration was loaded. Loading treats this as a
// soft condition: anonymous API access still works for public data, just
// under much tighter rate limits. Consumers that require authenticated scope
// must check for it before issuing any request.
var ErrMissingToken = errors.Sentinel("no GitHub access token in environment (set " + EnvGitHubToken + ")")

// ValidationError reports configuration values that violate their
// invariants, keyed by field name. It signals a defect in the defaults or in
// a config file override rather than a runtime condition, so startup must
// not proceed past it.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("malformed crawler configuration: %v", e.Fields)
}

// UnwritableOutputError reports an output target that rejected a write.
// Loading only guarantees the target path is non-empty; writability surfaces
// on the consumer's first append, which should wrap the failure in this type
// so callers can tell a bad output path apart from a failed crawl.
type UnwritableOutputError struct {
	Target string
	Err    error
}

func (e *UnwritableOutputError) Error() string {
	return fmt.Sprintf("output target %q is not writable: %v", e.Target, e.Err)
}

func (e *UnwritableOutputError) Unwrap() error {
	return e.Err
}
