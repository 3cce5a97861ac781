package sections

import internalsections "github.com/goliatone/go-datefield/internal/sections"

// Section re-exports the internal section model.
type Section = internalsections.Section

// Target re-exports the representation selector used by VisibleValue.
type Target = internalsections.Target

const (
	TargetInput = internalsections.TargetInput
	TargetParse = internalsections.TargetParse
)

// ConfigError re-exports the parser configuration failure carrying the
// offending token.
type ConfigError = internalsections.ConfigError

var (
	ErrExpansionOverflow = internalsections.ErrExpansionOverflow
	ErrMissingMaxLength  = internalsections.ErrMissingMaxLength
	ErrEmptyToken        = internalsections.ErrEmptyToken
)

// Join concatenates every section with its separators for the given target.
func Join(list []Section, target Target) string {
	return internalsections.Join(list, target)
}
