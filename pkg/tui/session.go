package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-datefield/pkg/boundaries"
	"github.com/goliatone/go-datefield/pkg/calendar"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/sections"
)

const (
	actionClearValue = "clear value"
	actionToday      = "today"
	actionQuit       = "quit"

	editTypeValue = "type a value"
	editStepUp    = "step +1"
	editStepDown  = "step -1"
	editClear     = "clear section"
	editBack      = "back"
)

// Session drives a field.Engine from terminal prompts: pick a section, then
// type a value into it, step it, or clear it. It is the worked example of
// mapping keyboard intent onto the engine's two edit callbacks.
type Session struct {
	engine  *field.Engine
	adapter calendar.Adapter
	driver  PromptDriver
	out     io.Writer
	log     *zap.Logger
}

// New builds a Session around an engine and the adapter it edits through.
func New(engine *field.Engine, adapter calendar.Adapter, options ...Option) (*Session, error) {
	if engine == nil {
		return nil, errors.New("tui: engine is required")
	}
	if adapter == nil {
		return nil, errors.New("tui: calendar adapter is required")
	}

	s := &Session{
		engine:  engine,
		adapter: adapter,
		driver:  newSurveyDriver(),
		out:     os.Stdout,
		log:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Run loops until the user quits. An aborted prompt ends the session without
// error.
func (s *Session) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, s.renderLine())

		list := s.engine.Sections()
		choices := make([]string, 0, len(list)+3)
		for _, section := range list {
			choices = append(choices, fmt.Sprintf("%s  %s", section.Type, section.VisibleValue(sections.TargetInput)))
		}
		choices = append(choices, actionClearValue, actionToday, actionQuit)

		idx, err := s.driver.Select(ctx, "Section to edit", choices)
		if err != nil {
			return sessionErr(err)
		}
		if idx < 0 || idx >= len(choices) {
			continue
		}
		if idx < len(list) {
			s.engine.SetSelectedSections(field.SelectIndex(idx))
			if err := s.editSection(ctx); err != nil {
				return sessionErr(err)
			}
			continue
		}

		switch choices[idx] {
		case actionClearValue:
			ok, err := s.driver.Confirm(ctx, "Clear the whole value?", false)
			if err != nil {
				return sessionErr(err)
			}
			if ok {
				s.engine.ClearValue()
			}
		case actionToday:
			if err := s.engine.SetValue(s.adapter.Now()); err != nil {
				return err
			}
		case actionQuit:
			return nil
		}
	}
}

func (s *Session) renderLine() string {
	return fmt.Sprintf("%s  [%s]",
		sections.Join(s.engine.Sections(), sections.TargetInput), s.engine.Value().Status)
}

func (s *Session) editSection(ctx context.Context) error {
	indexes, ok := s.engine.SelectedSectionIndexes()
	if !ok {
		return nil
	}
	active := s.engine.Sections()[indexes.Start]

	choice, err := s.driver.Select(ctx, fmt.Sprintf("Edit %s", active.Type),
		[]string{editTypeValue, editStepUp, editStepDown, editClear, editBack})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		text, err := s.driver.Input(ctx, "New value", active.VisibleValue(sections.TargetInput))
		if err != nil {
			return err
		}
		s.typeValue(active, strings.TrimSpace(text))
	case 1:
		s.step(active, 1)
	case 2:
		s.step(active, -1)
	case 3:
		s.engine.ClearActiveSection()
	}
	return nil
}

// typeValue commits typed text: applied as a component edit when the field
// already holds a valid date, written as raw section text otherwise.
func (s *Session) typeValue(active sections.Section, text string) {
	if text == "" {
		return
	}
	s.log.Debug("type value", zap.String("section", string(active.Type)), zap.String("text", text))
	s.engine.UpdateSectionValue(field.UpdateRequest{
		SetValueOnDate: func(date calendar.Date, b *boundaries.Provider) calendar.Date {
			return s.applyText(date, active, text, b)
		},
		SetValueOnSections: func(*boundaries.Provider) string {
			return text
		},
	})
}

func (s *Session) step(active sections.Section, delta int) {
	s.log.Debug("step section", zap.String("section", string(active.Type)), zap.Int("delta", delta))
	s.engine.UpdateSectionValue(field.UpdateRequest{
		SetValueOnDate: func(date calendar.Date, b *boundaries.Provider) calendar.Date {
			return s.stepDate(date, active, delta, b)
		},
		SetValueOnSections: func(b *boundaries.Provider) string {
			return s.stepText(active, delta, b)
		},
	})
}

// applyText maps typed text onto one component of a valid date. The text is
// validated by parsing it against the section's own token, so out-of-range
// input leaves the date untouched.
func (s *Session) applyText(date calendar.Date, active sections.Section, text string, b *boundaries.Provider) calendar.Date {
	a := s.adapter
	if active.Type == calendar.SectionWeekDay {
		return shiftToWeekDay(a, date, active.Format, text)
	}

	parsed := a.Parse(text, active.Format)
	if !parsed.IsValid() {
		return date
	}

	switch active.Type {
	case calendar.SectionYear:
		return a.SetYear(date, a.Year(parsed))
	case calendar.SectionMonth:
		return a.SetMonth(date, a.Month(parsed))
	case calendar.SectionDay:
		v := a.Day(parsed)
		max := b.Bounds(calendar.SectionDay, boundaries.Request{
			Current: date,
			Format:  active.Format,
			Content: active.ContentType,
		}).Maximum
		if v > max {
			v = max
		}
		return a.SetDay(date, v)
	case calendar.SectionHours:
		v := a.Hours(parsed)
		bounds := b.Bounds(calendar.SectionHours, boundaries.Request{
			Current: date,
			Format:  active.Format,
			Content: active.ContentType,
		})
		// 12-hour tokens keep the date's half of the day.
		if bounds.Maximum == 12 && a.Hours(date) >= 12 && v < 12 {
			v += 12
		}
		return a.SetHours(date, v)
	case calendar.SectionMinutes:
		return a.SetMinutes(date, a.Minutes(parsed))
	case calendar.SectionSeconds:
		return a.SetSeconds(date, a.Seconds(parsed))
	case calendar.SectionMeridiem:
		if a.Hours(parsed) >= 12 {
			if a.Hours(date) < 12 {
				return a.AddHours(date, 12)
			}
			return date
		}
		if a.Hours(date) >= 12 {
			return a.AddHours(date, -12)
		}
		return date
	default:
		return date
	}
}

// stepDate shifts one component of a valid date by delta, cycling at the
// section's bounds.
func (s *Session) stepDate(date calendar.Date, active sections.Section, delta int, b *boundaries.Provider) calendar.Date {
	a := s.adapter
	req := boundaries.Request{Current: date, Format: active.Format, Content: active.ContentType}

	switch active.Type {
	case calendar.SectionYear:
		bounds := b.Bounds(calendar.SectionYear, req)
		return a.SetYear(date, wrap(a.Year(date)+delta, bounds.Minimum, bounds.Maximum))
	case calendar.SectionMonth:
		return a.SetMonth(date, wrap(a.Month(date)+delta, 1, 12))
	case calendar.SectionDay:
		bounds := b.Bounds(calendar.SectionDay, req)
		return a.SetDay(date, wrap(a.Day(date)+delta, bounds.Minimum, bounds.Maximum))
	case calendar.SectionWeekDay:
		return a.AddDays(date, delta)
	case calendar.SectionHours:
		return a.SetHours(date, wrap(a.Hours(date)+delta, 0, 23))
	case calendar.SectionMinutes:
		return a.SetMinutes(date, wrap(a.Minutes(date)+delta, 0, 59))
	case calendar.SectionSeconds:
		return a.SetSeconds(date, wrap(a.Seconds(date)+delta, 0, 59))
	case calendar.SectionMeridiem:
		if a.Hours(date) < 12 {
			return a.AddHours(date, 12)
		}
		return a.AddHours(date, -12)
	default:
		return date
	}
}

// stepText steps a section that has no valid date behind it: filled digit
// sections cycle within their bounds, empty ones start at the boundary the
// step direction points away from.
func (s *Session) stepText(active sections.Section, delta int, b *boundaries.Provider) string {
	a := s.adapter
	switch active.Type {
	case calendar.SectionMeridiem, calendar.SectionWeekDay:
		return s.stepName(active, delta)
	case calendar.SectionMonth:
		if active.ContentType == calendar.ContentLetter && active.Value != "" {
			if parsed := a.Parse(active.Value, active.Format); parsed.IsValid() {
				return s.formatComponent(wrap(a.Month(parsed)+delta, 1, 12), active)
			}
		}
	}

	bounds := b.Bounds(active.Type, boundaries.Request{Format: active.Format, Content: active.ContentType})
	if v, err := strconv.Atoi(active.Value); err == nil {
		return s.formatComponent(wrap(v+delta, bounds.Minimum, bounds.Maximum), active)
	}
	if delta >= 0 {
		return s.formatComponent(bounds.Minimum, active)
	}
	return s.formatComponent(bounds.Maximum, active)
}

// stepName cycles the letter sections through their formatted name lists.
func (s *Session) stepName(active sections.Section, delta int) string {
	a := s.adapter
	if active.Type == calendar.SectionMeridiem {
		am := a.FormatByString(a.SetHours(a.Now(), 9), active.Format)
		pm := a.FormatByString(a.SetHours(a.Now(), 21), active.Format)
		if active.Value == am {
			return pm
		}
		return am
	}

	start := a.StartOfWeek(a.Now())
	names := make([]string, 7)
	pos := -1
	for i := range names {
		names[i] = a.FormatByString(a.AddDays(start, i), active.Format)
		if names[i] == active.Value {
			pos = i
		}
	}
	if pos < 0 {
		if delta >= 0 {
			return names[0]
		}
		return names[6]
	}
	return names[wrap(pos+delta, 0, 6)]
}

// formatComponent renders component value v as section text by setting it on
// a probe date and formatting with the section's own token, so padding and
// ordinals come out right. The probe is pinned to January before day edits to
// keep every day of month representable.
func (s *Session) formatComponent(v int, active sections.Section) string {
	a := s.adapter
	probe := a.Now()
	switch active.Type {
	case calendar.SectionYear:
		probe = a.SetYear(probe, v)
	case calendar.SectionMonth:
		probe = a.SetMonth(probe, v)
	case calendar.SectionDay:
		probe = a.SetDay(a.SetMonth(probe, 1), v)
	case calendar.SectionHours:
		probe = a.SetHours(probe, v)
	case calendar.SectionMinutes:
		probe = a.SetMinutes(probe, v)
	case calendar.SectionSeconds:
		probe = a.SetSeconds(probe, v)
	default:
		return active.Value
	}
	return a.FormatByString(probe, active.Format)
}

func shiftToWeekDay(a calendar.Adapter, date calendar.Date, format, name string) calendar.Date {
	start := a.StartOfWeek(date)
	current := a.FormatByString(date, format)
	currentPos, targetPos := -1, -1
	for i := 0; i < 7; i++ {
		formatted := a.FormatByString(a.AddDays(start, i), format)
		if strings.EqualFold(formatted, name) {
			targetPos = i
		}
		if formatted == current {
			currentPos = i
		}
	}
	if currentPos < 0 || targetPos < 0 {
		return date
	}
	return a.AddDays(date, targetPos-currentPos)
}

// wrap steps v into [min, max], cycling past either end.
func wrap(v, min, max int) int {
	if max < min {
		return v
	}
	span := max - min + 1
	return min + ((v-min)%span+span)%span
}

func sessionErr(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
