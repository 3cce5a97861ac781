// Package field implements the section state engine: it owns the live
// {sections, value, reference value} state of one date/time field, commits
// single-section edits, merges partial input onto a guaranteed-valid
// reference date, recovers from day overflow ("02/31"), and resynchronizes
// when the external value or the format changes. The engine assumes strict
// single-goroutine use per instance; every operation computes a full
// replacement snapshot before any notification fires, so callers never
// observe partial state.
package field
