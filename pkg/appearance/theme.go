package appearance

import (
	"fmt"
	"strconv"

	theme "github.com/goliatone/go-theme"
)

// Design token names the resolver reads from a theme manifest.
const (
	TokenDensity   = "field.density"
	TokenDirection = "field.direction"
	TokenSegmented = "field.segmented"
)

// ThemeSelector matches go-theme's selector surface; the facade accepts one
// so callers can resolve appearance straight from their theme pipeline.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// FromSelection resolves an Appearance from an already-selected theme. A nil
// selection or manifest yields the defaults.
func FromSelection(sel *theme.Selection) (Appearance, error) {
	if sel == nil || sel.Manifest == nil {
		return Default(), nil
	}
	return FromManifest(sel.Manifest, sel.Variant)
}

// FromManifest resolves an Appearance from manifest tokens, with the named
// variant's tokens overriding the base set. Absent tokens keep defaults;
// unknown token values are errors.
func FromManifest(m *theme.Manifest, variant string) (Appearance, error) {
	out := Default()
	if m == nil {
		return out, nil
	}

	tokens := make(map[string]string, len(m.Tokens))
	for k, v := range m.Tokens {
		tokens[k] = v
	}
	if variant != "" {
		if v, ok := m.Variants[variant]; ok {
			for k, value := range v.Tokens {
				tokens[k] = value
			}
		}
	}

	if value, ok := tokens[TokenDensity]; ok {
		density, err := ParseDensity(value)
		if err != nil {
			return Appearance{}, err
		}
		out.Density = density
	}
	if value, ok := tokens[TokenDirection]; ok {
		direction, err := ParseDirection(value)
		if err != nil {
			return Appearance{}, err
		}
		out.Direction = direction
	}
	if value, ok := tokens[TokenSegmented]; ok {
		segmented, err := strconv.ParseBool(value)
		if err != nil {
			return Appearance{}, fmt.Errorf("appearance: token %s: %w", TokenSegmented, err)
		}
		out.Segmented = segmented
	}
	return out, nil
}
