// Package errs defines the error taxonomy shared by the KPI engines.
//
// Three failure classes exist: configuration errors (fatal, raised
// before any computation), missing or malformed input fields (fatal per
// record batch, raised at the CSV boundary), and undefined ratios
// (recovered locally and surfaced as explicit markers, never as zero).
package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagConfig marks malformed configuration, e.g. a band table
	// that does not partition the SKU-count range.
	ErrTagConfig = goerr.NewTag("config")

	// ErrTagMissingField marks input batches missing a required column
	// or carrying unparsable values.
	ErrTagMissingField = goerr.NewTag("missing_field")
)

// ErrDivisionUndefined signals a percentage whose denominator is zero.
// Callers report it per record rather than aborting the batch.
var ErrDivisionUndefined = goerr.New("division undefined: zero denominator")
