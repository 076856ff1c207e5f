// Package validate provides input validation for pathkit's CLI and MCP
// boundaries.
//
// The fspath package accepts any byte string, so validation here is about
// rejecting input that cannot have come from a real path: embedded NUL bytes
// and strings longer than the configured limit. Empty paths are valid; most
// operations define a result for them.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go.
// Use errors.Is() for type-safe error checking:
//
//	if errors.Is(err, validate.ErrPathTooLong) {
//	    // handle over-long input
//	}
package validate
