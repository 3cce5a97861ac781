package field

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-datefield/pkg/appearance"
	"github.com/goliatone/go-datefield/pkg/boundaries"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/localetext"
)

// ValueType constrains the section types a field accepts. A date-only field
// rejects formats carrying hour or meridiem tokens at construction instead of
// mis-editing them later.
type ValueType string

const (
	DateOnly ValueType = "date"
	TimeOnly ValueType = "time"
	DateTime ValueType = "date-time"
)

// valueTypeSections is the closed table of section types each value type
// supports. SectionEmpty is always allowed so literal-only formats keep
// working.
var valueTypeSections = map[ValueType][]calendar.SectionType{
	DateOnly: {
		calendar.SectionYear,
		calendar.SectionMonth,
		calendar.SectionDay,
		calendar.SectionWeekDay,
		calendar.SectionEmpty,
	},
	TimeOnly: {
		calendar.SectionHours,
		calendar.SectionMinutes,
		calendar.SectionSeconds,
		calendar.SectionMeridiem,
		calendar.SectionEmpty,
	},
	DateTime: {
		calendar.SectionYear,
		calendar.SectionMonth,
		calendar.SectionDay,
		calendar.SectionWeekDay,
		calendar.SectionHours,
		calendar.SectionMinutes,
		calendar.SectionSeconds,
		calendar.SectionMeridiem,
		calendar.SectionEmpty,
	},
}

// Option configures an Engine before construction.
type Option func(*config)

type config struct {
	adapter             calendar.Adapter
	format              string
	value               calendar.Date
	referenceDate       calendar.Date
	valueType           ValueType
	placeholders        localetext.Provider
	appearance          appearance.Appearance
	respectLeadingZeros bool
	bounds              *boundaries.Provider
	valueManager        ValueManager
	fieldValueManager   FieldValueManager
	onValueChange       func(calendar.Date)
	onSelectionChange   func(Selection)
	logger              *zap.Logger
}

// WithAdapter sets the calendar adapter the engine formats, parses, and does
// arithmetic through. Required.
func WithAdapter(a calendar.Adapter) Option {
	return func(cfg *config) {
		cfg.adapter = a
	}
}

// WithFormat sets the field's format string. Required.
func WithFormat(format string) Option {
	return func(cfg *config) {
		cfg.format = format
	}
}

// WithValue seeds the field's initial value. Defaults to the empty value.
func WithValue(v calendar.Date) Option {
	return func(cfg *config) {
		cfg.value = v
	}
}

// WithReferenceDate overrides the date partial edits are merged onto when no
// valid value exists yet. Defaults to the value manager's today.
func WithReferenceDate(d calendar.Date) Option {
	return func(cfg *config) {
		cfg.referenceDate = d
	}
}

// WithValueType constrains the section types the field supports. Defaults to
// DateTime.
func WithValueType(vt ValueType) Option {
	return func(cfg *config) {
		cfg.valueType = vt
	}
}

// WithLocaleText sets the placeholder provider used for empty sections.
func WithLocaleText(p localetext.Provider) Option {
	return func(cfg *config) {
		cfg.placeholders = p
	}
}

// WithAppearance sets density, direction, and grouping for parsed sections.
func WithAppearance(a appearance.Appearance) Option {
	return func(cfg *config) {
		cfg.appearance = a
	}
}

// WithRespectLeadingZeros makes the visible value honor the format's own
// padding instead of always padding numeric input.
func WithRespectLeadingZeros(respect bool) Option {
	return func(cfg *config) {
		cfg.respectLeadingZeros = respect
	}
}

// WithBoundaries overrides the per-section bounds provider handed to edit
// callbacks and used by day clamp recovery.
func WithBoundaries(b *boundaries.Provider) Option {
	return func(cfg *config) {
		cfg.bounds = b
	}
}

// WithValueManager overrides the value equality and sentinel strategy.
func WithValueManager(vm ValueManager) Option {
	return func(cfg *config) {
		cfg.valueManager = vm
	}
}

// WithFieldValueManager overrides how sections map to dates and back.
func WithFieldValueManager(fvm FieldValueManager) Option {
	return func(cfg *config) {
		cfg.fieldValueManager = fvm
	}
}

// WithOnValueChange registers the callback fired after a published edit
// changes the field's value.
func WithOnValueChange(fn func(calendar.Date)) Option {
	return func(cfg *config) {
		cfg.onValueChange = fn
	}
}

// WithOnSelectionChange registers the callback fired whenever the selection
// descriptor moves.
func WithOnSelectionChange(fn func(Selection)) Option {
	return func(cfg *config) {
		cfg.onSelectionChange = fn
	}
}

// WithLogger sets the engine's logger. Defaults to a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
