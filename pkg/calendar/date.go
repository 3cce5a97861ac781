package calendar

import "time"

// DateStatus discriminates the three states a field value can be in.
type DateStatus uint8

const (
	// DateEmpty marks a value that holds nothing. The zero Date is empty.
	DateEmpty DateStatus = iota
	// DateInvalid marks a value parsed out of malformed input: the field
	// holds something, but it does not name a real instant.
	DateInvalid
	// DateValid marks a value carrying a real instant.
	DateValid
)

// String returns the lowercase name of the status.
func (s DateStatus) String() string {
	switch s {
	case DateEmpty:
		return "empty"
	case DateInvalid:
		return "invalid"
	case DateValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Date is the value currency of the field pipeline. It distinguishes an
// empty (unset) value from one parsed out of malformed input, which a bare
// time.Time cannot express: the engine picks its edit path by asking whether
// the active date is currently valid, and an in-progress unparseable
// candidate must not look like a cleared field.
type Date struct {
	Time   time.Time
	Status DateStatus
}

// NewDate wraps t as a valid Date.
func NewDate(t time.Time) Date {
	return Date{Time: t, Status: DateValid}
}

// Invalid returns the invalid Date.
func Invalid() Date {
	return Date{Status: DateInvalid}
}

// Empty returns the empty Date. Equivalent to the zero value.
func Empty() Date {
	return Date{}
}

// IsValid reports whether d names a real instant.
func (d Date) IsValid() bool {
	return d.Status == DateValid
}

// IsEmpty reports whether d holds nothing.
func (d Date) IsEmpty() bool {
	return d.Status == DateEmpty
}

// Equal reports whether two dates are the same value. Non-valid dates
// compare by status alone.
func (d Date) Equal(o Date) bool {
	if d.Status != o.Status {
		return false
	}
	if d.Status != DateValid {
		return true
	}
	return d.Time.Equal(o.Time)
}
