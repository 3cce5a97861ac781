package sections

import (
	"errors"
	"fmt"
)

var (
	// ErrExpansionOverflow reports an adapter whose format expansion never
	// reaches a fixed point, usually a cyclic macro definition.
	ErrExpansionOverflow = errors.New("sections: format expansion did not reach a fixed point")
	// ErrMissingMaxLength reports a digit token that renders unpadded output
	// but carries no max length in its adapter token config.
	ErrMissingMaxLength = errors.New("sections: token config is missing a max length")
	// ErrEmptyToken reports an empty format token reaching section
	// construction, an adapter token map contract violation.
	ErrEmptyToken = errors.New("sections: empty format token")
)

// ConfigError wraps a parser configuration failure together with the format
// token that triggered it.
type ConfigError struct {
	Token string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: token %q", e.Err.Error(), e.Token)
}

func (e *ConfigError) Unwrap() error { return e.Err }
