// Package bumperrors provides error definitions for version propagation.
//
// This package defines the sentinel errors returned by the relver, rewrite
// and propagate packages, so callers can match failures with [errors.Is]
// regardless of how deeply they were wrapped.
package bumperrors
