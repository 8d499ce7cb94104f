// Package errors collects per-page emission failures so one failed write
// never aborts the rest of a generation run. Configuration and plan errors
// are not collected here; those are fatal before emission starts.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// PageError represents a failure while emitting one page
type PageError struct {
	Lang      string
	ID        int
	Path      string
	Message   string
	Severity  ErrorSeverity
	Timestamp time.Time
}

// ErrorSeverity represents the severity of an error
type ErrorSeverity int

const (
	ErrorSeverityInfo ErrorSeverity = iota
	ErrorSeverityWarning
	ErrorSeverityError
)

// String returns the string representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityInfo:
		return "info"
	case ErrorSeverityWarning:
		return "warning"
	case ErrorSeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Error implements the error interface
func (pe *PageError) Error() string {
	return fmt.Sprintf("%s [%s id=%d]: %s: %s", pe.Path, pe.Lang, pe.ID, pe.Severity, pe.Message)
}

// ErrorCollector collects page errors across an emission run
type ErrorCollector struct {
	pageErrors []PageError
	errors     []error
	mutex      sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		pageErrors: make([]PageError, 0),
		errors:     make([]error, 0),
	}
}

// Add adds a page error to the collector
func (ec *ErrorCollector) Add(err PageError) {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	err.Timestamp = time.Now()
	ec.pageErrors = append(ec.pageErrors, err)
}

// AddError adds a general error to the collector
func (ec *ErrorCollector) AddError(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// PageErrors returns a copy of all collected page errors
func (ec *ErrorCollector) PageErrors() []PageError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]PageError, len(ec.pageErrors))
	copy(result, ec.pageErrors)
	return result
}

// All returns all collected errors, page and general
func (ec *ErrorCollector) All() []error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	all := make([]error, 0, len(ec.pageErrors)+len(ec.errors))
	for i := range ec.pageErrors {
		all = append(all, &ec.pageErrors[i])
	}
	all = append(all, ec.errors...)
	return all
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.pageErrors) > 0 || len(ec.errors) > 0
}

// Count returns the number of collected errors
func (ec *ErrorCollector) Count() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.pageErrors) + len(ec.errors)
}

// Clear clears all errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.pageErrors = ec.pageErrors[:0]
	ec.errors = ec.errors[:0]
}
