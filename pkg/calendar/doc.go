// Package calendar defines the value and vocabulary types shared across the
// field pipeline: the tri-state Date value, section and content type enums,
// the format token table, and the Adapter contract that supplies locale-aware
// parsing, formatting, and calendar arithmetic. A process-wide registry maps
// adapter names to implementations.
package calendar
