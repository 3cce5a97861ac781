package field

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-datefield/pkg/boundaries"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/sections"
)

// Engine owns the canonical state of one field: its section list, its value,
// the reference date partial edits merge onto, and the staged android
// composition text. Every operation computes a full replacement snapshot,
// installs it, and only then fires notifications, so callers never observe a
// half-applied edit. An Engine is not safe for concurrent use.
type Engine struct {
	adapter           calendar.Adapter
	parser            sections.Parser
	bounds            *boundaries.Provider
	valueManager      ValueManager
	fieldValueManager FieldValueManager
	log               *zap.Logger

	format    string
	valueType ValueType
	supported map[calendar.SectionType]bool

	state     FieldState
	selection Selection

	onValueChange     func(calendar.Date)
	onSelectionChange func(Selection)
}

// New builds an Engine, parses the initial section list, and fails loudly on
// any configuration error.
func New(opts ...Option) (*Engine, error) {
	cfg := config{valueType: DateTime, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.adapter == nil {
		return nil, errors.New("field: calendar adapter is required")
	}
	if cfg.format == "" {
		return nil, errors.New("field: a format is required")
	}
	types, ok := valueTypeSections[cfg.valueType]
	if !ok {
		return nil, fmt.Errorf("field: unknown value type %q", cfg.valueType)
	}
	supported := make(map[calendar.SectionType]bool, len(types))
	for _, t := range types {
		supported[t] = true
	}
	if cfg.valueManager == nil {
		cfg.valueManager = DefaultValueManager()
	}
	if cfg.fieldValueManager == nil {
		cfg.fieldValueManager = DefaultFieldValueManager()
	}
	if cfg.bounds == nil {
		cfg.bounds = boundaries.New(cfg.adapter)
	}

	parser, err := sections.NewParser(
		sections.WithAdapter(cfg.adapter),
		sections.WithLocaleText(cfg.placeholders),
		sections.WithAppearance(cfg.appearance),
		sections.WithRespectLeadingZeros(cfg.respectLeadingZeros),
	)
	if err != nil {
		return nil, fmt.Errorf("field: configure parser: %w", err)
	}

	e := &Engine{
		adapter:           cfg.adapter,
		parser:            parser,
		bounds:            cfg.bounds,
		valueManager:      cfg.valueManager,
		fieldValueManager: cfg.fieldValueManager,
		log:               cfg.logger,
		format:            cfg.format,
		valueType:         cfg.valueType,
		supported:         supported,
		onValueChange:     cfg.onValueChange,
		onSelectionChange: cfg.onSelectionChange,
	}

	base := cfg.referenceDate
	if !base.IsValid() {
		base = cfg.valueManager.TodayValue(cfg.adapter)
	}
	reference := cfg.fieldValueManager.UpdateReferenceValue(cfg.adapter, cfg.value, base)

	secs, err := cfg.fieldValueManager.SectionsFromValue(parser, nil, cfg.value, cfg.format)
	if err != nil {
		return nil, fmt.Errorf("field: parse format: %w", err)
	}
	if err := e.validateSections(secs); err != nil {
		return nil, err
	}

	e.state = FieldState{Sections: secs, Value: cfg.value, ReferenceValue: reference}
	return e, nil
}

// Sections returns a copy of the current section list.
func (e *Engine) Sections() []sections.Section {
	return copySections(e.state.Sections)
}

// Value returns the current field value.
func (e *Engine) Value() calendar.Date {
	return e.state.Value
}

// ReferenceValue returns the date incomplete edits merge onto.
func (e *Engine) ReferenceValue() calendar.Date {
	return e.state.ReferenceValue
}

// Format returns the current format string.
func (e *Engine) Format() string {
	return e.format
}

// SelectedSections returns the current selection descriptor.
func (e *Engine) SelectedSections() Selection {
	return e.selection
}

// SelectedSectionIndexes resolves the selection against the current section
// list.
func (e *Engine) SelectedSectionIndexes() (SectionIndexes, bool) {
	return e.selection.Resolve(e.state.Sections)
}

// AndroidFallback returns the staged composition text and whether one is set.
func (e *Engine) AndroidFallback() (string, bool) {
	return e.state.AndroidFallback()
}

// State returns a snapshot of the field state. The section list is copied.
func (e *Engine) State() FieldState {
	st := e.state
	st.Sections = copySections(e.state.Sections)
	return st
}

// SetSelectedSections moves the selection. The android fallback resets on
// every selection move, and the selection notification always fires.
func (e *Engine) SetSelectedSections(sel Selection) {
	e.selection = sel
	e.state.fallbackText = ""
	e.state.fallbackSet = false
	e.log.Debug("selection changed", zap.Stringer("selection", sel))
	if e.onSelectionChange != nil {
		e.onSelectionChange(sel)
	}
}

// SetAndroidFallback stages composition text that cannot be reconciled
// section by section. The engine stores it verbatim.
func (e *Engine) SetAndroidFallback(text string) {
	e.state.fallbackText = text
	e.state.fallbackSet = true
}

// ClearValue resets the field to the empty value. The reference date is
// preserved so the next partial edit still merges onto familiar ground.
func (e *Engine) ClearValue() {
	e.publish(e.valueManager.EmptyValue(), e.state.ReferenceValue)
}

// ClearActiveSection blanks the text of the section at the selection start.
// Clearing the last non-empty section of the active date empties the whole
// value; clearing one of several leaves an invalid candidate that stays
// internal, unpublished.
func (e *Engine) ClearActiveSection() {
	indexes, ok := e.selection.Resolve(e.state.Sections)
	if !ok {
		e.log.Debug("clear skipped: no active section")
		return
	}
	active := e.state.Sections[indexes.Start]
	adm := e.fieldValueManager.ActiveDateManager(e.adapter, e.state, active)

	unit := e.fieldValueManager.ActiveDateSections(e.state.Sections, active)
	nonEmpty := 0
	for _, section := range unit {
		if section.Value != "" {
			nonEmpty++
		}
	}
	clearsLast := nonEmpty == 0
	if active.Value != "" {
		clearsLast = nonEmpty == 1
	}

	secs := copySections(e.state.Sections)
	secs[indexes.Start].Value = ""
	secs[indexes.Start].Modified = true

	candidate := calendar.Invalid()
	if clearsLast {
		candidate = e.valueManager.EmptyValue()
	}
	value, reference := adm.NewValue(candidate)

	if candidate.IsEmpty() || candidate.IsValid() {
		e.publish(value, reference)
		return
	}
	e.install(FieldState{Sections: secs, Value: value, ReferenceValue: reference})
	e.log.Debug("section cleared", zap.Stringer("selection", e.selection))
}

// UpdateRequest carries the two halves of an edit commit. The engine invokes
// exactly one of them: SetValueOnDate when the active date is currently
// valid, SetValueOnSections otherwise.
type UpdateRequest struct {
	// SetValueOnDate maps the valid active date to its edited successor. The
	// bounds provider is handed in so callers can clamp.
	SetValueOnDate func(active calendar.Date, b *boundaries.Provider) calendar.Date
	// SetValueOnSections produces the active section's new raw text when no
	// valid date exists to edit against.
	SetValueOnSections func(b *boundaries.Provider) string
}

// UpdateSectionValue commits one section edit. A multi-section selection
// collapses to its start before the edit applies. On the sections path the
// engine re-parses the active date's sections, attempts day overflow
// recovery, and merges a newly valid candidate onto the reference date;
// candidates that stay invalid are retained internally without publication.
func (e *Engine) UpdateSectionValue(req UpdateRequest) {
	indexes, ok := e.selection.Resolve(e.state.Sections)
	if !ok {
		e.log.Debug("edit skipped: no active section")
		return
	}
	if indexes.Start != indexes.End {
		e.SetSelectedSections(SelectIndex(indexes.Start))
		indexes.End = indexes.Start
	}
	active := e.state.Sections[indexes.Start]
	adm := e.fieldValueManager.ActiveDateManager(e.adapter, e.state, active)

	if adm.Date.IsValid() {
		if req.SetValueOnDate == nil {
			return
		}
		next := req.SetValueOnDate(adm.Date, e.bounds)
		value, reference := adm.NewValue(next)
		e.log.Debug("section edit", zap.String("path", "date"), zap.Stringer("selection", e.selection))
		e.publish(value, reference)
		return
	}

	if req.SetValueOnSections == nil {
		return
	}
	text := req.SetValueOnSections(e.bounds)
	secs := copySections(e.state.Sections)
	secs[indexes.Start].Value = text
	secs[indexes.Start].Modified = true

	unit := e.fieldValueManager.ActiveDateSections(secs, secs[indexes.Start])
	candidate := dateFromSections(e.adapter, unit)
	if !candidate.IsValid() {
		if clamped, recovered := e.recoverDayOverflow(unit); recovered {
			candidate = clamped
		}
	}

	if candidate.IsValid() {
		merged := mergeDateIntoReferenceDate(e.adapter, candidate, unit, adm.ReferenceDate, true)
		value, reference := adm.NewValue(merged)
		e.log.Debug("section edit", zap.String("path", "sections"), zap.Stringer("selection", e.selection))
		e.publish(value, reference)
		return
	}

	value, reference := adm.NewValue(candidate)
	e.install(FieldState{Sections: secs, Value: value, ReferenceValue: reference})
	e.log.Debug("section edit", zap.String("path", "sections"),
		zap.Stringer("selection", e.selection), zap.String("status", value.Status.String()))
}

// SetValue resynchronizes the engine with an externally owned value. A value
// equal to the current one is a no-op, which is what absorbs the echo of a
// just-published local edit. Any in-progress edit is discarded. No
// value-change notification fires: the change came from outside.
func (e *Engine) SetValue(v calendar.Date) error {
	if e.valueManager.AreValuesEqual(e.adapter, v, e.state.Value) {
		e.log.Debug("resync skipped: value unchanged")
		return nil
	}
	secs, err := e.fieldValueManager.SectionsFromValue(e.parser, e.state.Sections, v, e.format)
	if err != nil {
		return fmt.Errorf("field: parse format: %w", err)
	}
	reference := e.fieldValueManager.UpdateReferenceValue(e.adapter, v, e.state.ReferenceValue)
	e.install(FieldState{Sections: secs, Value: v, ReferenceValue: reference})
	e.log.Debug("value resynchronized", zap.String("status", v.Status.String()))
	return nil
}

// SetFormat swaps the format string, reparsing sections from the current
// value. The engine state is unchanged when the new format fails to parse or
// carries section types outside the field's supported set.
func (e *Engine) SetFormat(format string) error {
	secs, err := e.fieldValueManager.SectionsFromValue(e.parser, e.state.Sections, e.state.Value, format)
	if err != nil {
		return fmt.Errorf("field: parse format: %w", err)
	}
	if err := e.validateSections(secs); err != nil {
		return err
	}
	e.format = format
	e.install(FieldState{Sections: secs, Value: e.state.Value, ReferenceValue: e.state.ReferenceValue})
	e.log.Debug("format changed", zap.String("format", format))
	return nil
}

// recoverDayOverflow retries a failed unit parse on the theory that only the
// day overflowed its month. It requires every unit section to be filled and a
// day section to exist: the unit is re-parsed with the day forced to "1" to
// learn the month, and when the original day exceeds that month's maximum it
// is clamped down and parsed once more.
func (e *Engine) recoverDayOverflow(unit []sections.Section) (calendar.Date, bool) {
	dayIndex := -1
	for i, section := range unit {
		if section.Value == "" {
			return calendar.Date{}, false
		}
		if dayIndex < 0 && section.Type == calendar.SectionDay {
			dayIndex = i
		}
	}
	if dayIndex < 0 {
		return calendar.Date{}, false
	}

	probe := copySections(unit)
	probe[dayIndex].Value = "1"
	withDayOne := dateFromSections(e.adapter, probe)
	if !withDayOne.IsValid() {
		return calendar.Date{}, false
	}

	day, err := strconv.Atoi(unit[dayIndex].Value)
	if err != nil {
		return calendar.Date{}, false
	}
	max := e.bounds.Bounds(calendar.SectionDay, boundaries.Request{
		Current: withDayOne,
		Format:  unit[dayIndex].Format,
		Content: unit[dayIndex].ContentType,
	}).Maximum
	if day <= max {
		return calendar.Date{}, false
	}

	probe[dayIndex].Value = strconv.Itoa(max)
	clamped := dateFromSections(e.adapter, probe)
	if !clamped.IsValid() {
		return calendar.Date{}, false
	}
	e.log.Debug("day clamp recovery", zap.Int("day", day), zap.Int("max", max))
	return clamped, true
}

// publish installs a snapshot built around value and fires the value-change
// notification when the value actually changed. Only empty or valid values
// flow through here: sections are regenerated from the value, which would
// blank the text of an in-progress invalid candidate.
func (e *Engine) publish(value, reference calendar.Date) {
	prev := e.state.Value
	secs, err := e.fieldValueManager.SectionsFromValue(e.parser, e.state.Sections, value, e.format)
	if err != nil {
		e.log.Debug("section regeneration failed", zap.Error(err))
		secs = e.state.Sections
	}
	e.install(FieldState{Sections: secs, Value: value, ReferenceValue: reference})

	changed := !e.valueManager.AreValuesEqual(e.adapter, prev, value)
	e.log.Debug("value published",
		zap.String("status", value.Status.String()), zap.Bool("changed", changed))
	if changed && e.onValueChange != nil {
		e.onValueChange(value)
	}
}

// install replaces the whole state snapshot. A fresh FieldState carries no
// android fallback, so every install clears it.
func (e *Engine) install(st FieldState) {
	e.state = st
}

func (e *Engine) validateSections(list []sections.Section) error {
	for _, section := range list {
		if !e.supported[section.Type] {
			return fmt.Errorf("%w: %s in a %s field", ErrUnsupportedSection, section.Type, e.valueType)
		}
	}
	return nil
}
