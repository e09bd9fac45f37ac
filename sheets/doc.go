// Package sheets is a convenience layer over the Google Sheets API.
// It opens workbooks by name, resolves worksheets case-insensitively,
// and performs read, write, format, and delete operations, converting
// between API value grids and table structures.
//
// Every remote call runs through a Retrier that absorbs transient
// failures (malformed responses, 502s, quota exhaustion, service
// unavailability) with a fixed backoff, bounded by a retry budget and
// one unconditional final attempt. All other errors propagate
// immediately and unwrapped, so callers can inspect the original
// googleapi error.
//
// The authenticated session is injected at construction via config and
// client options; the package holds no global state, and retried
// operations should be idempotent since a retry repeats their remote
// effect.
package sheets
