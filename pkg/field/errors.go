package field

import "errors"

// ErrUnsupportedSection reports a parsed format containing a section type the
// field's value type does not carry, e.g. an hours token on a date-only
// field.
var ErrUnsupportedSection = errors.New("field: unsupported section type")
