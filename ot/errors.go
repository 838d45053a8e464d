package ot

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoTable is returned by typed table accessors if a font does not contain
// the requested table.
var ErrNoTable = errors.New("table not present in font")

// ErrorSeverity represents the severity level of a font parsing error.
type ErrorSeverity int

const (
	// SeverityCritical indicates an error that makes the font unusable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates an error that makes a table unusable.
	SeverityMajor
	// SeverityMinor indicates an issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents an error encountered while decoding a font.
// Errors are accumulated and can be inspected at any time, see `Font.Errors`.
type FontError struct {
	Table    Tag           // The OpenType table where the error occurred (e.g., "GSUB", "GPOS")
	Section  string        // Specific section within the table (e.g., "LookupList", "Coverage")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset in the font file where the error occurred (0 if unknown)
}

// Error implements the error interface.
func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Table, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Table, e.Section, e.Issue)
}

// FontWarning represents a non-critical issue encountered while decoding a font.
type FontWarning struct {
	Table  Tag    // The OpenType table where the warning occurred
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset in the font file where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates errors and warnings. Tables are decoded lazily,
// possibly from different goroutines, so access is synchronized.
type errorCollector struct {
	sync.Mutex
	errors   []FontError
	warnings []FontWarning
}

func (ec *errorCollector) addError(table Tag, section string, issue string, severity ErrorSeverity, offset uint32) {
	ec.Lock()
	defer ec.Unlock()
	ec.errors = append(ec.errors, FontError{
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: severity,
		Offset:   offset,
	})
}

func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	ec.Lock()
	defer ec.Unlock()
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}

// tableError records err as a major error for table tag and returns it,
// wrapped with the table's name.
func (ec *errorCollector) tableError(tag Tag, section string, err error) error {
	if err == nil {
		return nil
	}
	ec.addError(tag, section, err.Error(), SeverityMajor, 0)
	return fmt.Errorf("table %s: %w", tag, err)
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}
