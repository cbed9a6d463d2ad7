package loader

import (
	"fmt"
	"strings"

	"selam-hq/callisto/pkg/schema"
)

// LoadError represents an error that occurred while reading a configuration
// document from the file system. This includes missing files, permission
// problems, size limit violations, and encoding issues.
type LoadError struct {
	// FilePath is the path to the file that failed to load
	FilePath string

	// Message describes the error
	Message string

	// Cause is the underlying error that caused this load error
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load config file %q: %s: %v", e.FilePath, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load config file %q: %s", e.FilePath, e.Message)
}

// Unwrap implements the errors.Unwrap interface for error chain support.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the load failed because the file is missing.
func (e *LoadError) IsNotFound() bool {
	return e.Message == "file not found"
}

// ParseError represents an error that occurred during YAML parsing or while
// binding a document to its typed schema.
type ParseError struct {
	// FilePath is the path to the file that failed to parse
	FilePath string

	// Message describes the parsing error
	Message string

	// Cause is the underlying parser error
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q: %s", e.FilePath, e.Message)
}

// Unwrap implements the errors.Unwrap interface for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents constraint violations found in a resolved
// configuration document. All violations are collected before it is returned.
type ValidationError struct {
	// Domain is the configuration domain the document belongs to
	Domain schema.Domain

	// Name is the document name for collection domains, "" for singletons
	Name string

	// FilePath is the path to the offending document
	FilePath string

	// Fields contains every constraint violation found
	Fields []schema.FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	subject := string(e.Domain)
	if e.Name != "" {
		subject = fmt.Sprintf("%s %q", e.Domain, e.Name)
	}
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s config validation failed: %s", subject, e.Fields[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s config validation failed with %d errors:\n", subject, len(e.Fields)))
	for _, fe := range e.Fields {
		sb.WriteString(fmt.Sprintf("  - %s\n", fe.Error()))
	}
	return sb.String()
}

// ErrorList collects multiple errors from operations that touch several
// documents, such as validating the whole configuration tree.
type ErrorList struct {
	Errors []error
}

// Add appends an error to the list. Nil errors are ignored.
func (e *ErrorList) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// HasErrors reports whether any errors were collected.
func (e *ErrorList) HasErrors() bool {
	return len(e.Errors) > 0
}

// ToError returns the list as an error, or nil when empty.
func (e *ErrorList) ToError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// Error implements the error interface.
func (e *ErrorList) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %v\n", i+1, err))
	}
	return sb.String()
}
