// Package sections exposes the format parser: it splits a format string into
// the ordered list of editable Section descriptors the field engine works on.
// The parsing implementation resides in internal/sections but returns the
// types aliased here. Each Section carries its token, current text, locale
// placeholder, separators, and the leading-zero behavior that keeps the
// editable width of unpadded tokens constant. Join concatenates a section
// list back into the display string (TargetInput) or into the string handed
// to the calendar adapter's parser (TargetParse).
package sections
