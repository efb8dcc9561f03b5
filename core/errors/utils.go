// File: utils.go
// Title: Shared Error Handling Utilities
// Description: ErrorBuilder and the standard constructors every commons
//              package uses instead of fmt.Errorf or errors.New.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: "validation failed:" prefix for OutOfRange
// - 2025-03-02 v0.2.0: MalformedInput and InvalidPattern constructors

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/commons/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the error. Without an explicit code the module default for
// the operation is used; module and operation are always recorded as details.
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	code := eb.code
	if code == "" {
		code = getModuleErrorCode(eb.module, eb.operation)
	}

	message := eb.message
	switch {
	case message != "":
	case eb.operation != "":
		message = eb.module + "." + eb.operation + " failed"
	default:
		message = eb.module + " operation failed"
	}

	err := mdwerror.Wrap(eb.cause, message)
	if err == nil {
		err = mdwerror.New(message)
	}

	err.WithCode(mdwerror.Code(code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithDetail("module", eb.module).
		WithSeverity(eb.severity)
	if eb.operation != "" {
		err.WithDetail("operation", eb.operation)
	}
	return err
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// MalformedInput creates the error raised when structured input violates a
// well-formedness rule. rule names the violated rule in plain words.
func MalformedInput(module, operation, rule string, details map[string]interface{}) *mdwerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("malformed input in %s.%s: %s", module, operation, rule)).
		Code(CodeMalformedInput).
		Detail("rule", rule).
		Severity(mdwerror.SeverityLow)
	for k, v := range details {
		b.Detail(k, v)
	}
	return b.Build()
}

// InvalidPattern creates the error for a regular expression that failed to compile
func InvalidPattern(module, pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("compile_pattern").
		Message(fmt.Sprintf("invalid pattern %q", pattern)).
		Cause(cause).
		Code(fmt.Sprintf("%s_INVALID_PATTERN", strings.ToUpper(module))).
		Detail("pattern", pattern).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%v not found in %s.%s", identifier, module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// HasCode reports whether any structured error in the chain carries code
func HasCode(err error, code string) bool {
	return mdwerror.HasCode(err, mdwerror.Code(code))
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// StringxValidationError reports a failed string validation
func StringxValidationError(operation, input, expected string) *mdwerror.Error {
	return ValidationFailed(ModuleStringx, operation, input, expected)
}

// StringxInvalidInput reports an argument the stringx operation cannot accept
func StringxInvalidInput(operation string, input interface{}, expected string) *mdwerror.Error {
	return InvalidInput(ModuleStringx, operation, input, expected)
}

// StringxMalformedInput reports malformed delimited text
func StringxMalformedInput(operation, rule string, details map[string]interface{}) *mdwerror.Error {
	return MalformedInput(ModuleStringx, operation, rule, details)
}

// StringxInvalidPattern reports a pattern that does not compile
func StringxInvalidPattern(pattern string, cause error) *mdwerror.Error {
	return InvalidPattern(ModuleStringx, pattern, cause)
}

// VersionxParseError reports an unparsable version string
func VersionxParseError(input string) *mdwerror.Error {
	return NewErrorBuilder(ModuleVersionx).
		Operation("parse").
		Message(fmt.Sprintf("invalid version %q: expected dot separated non-negative integers", input)).
		Code(CodeVersionxInvalidFormat).
		Detail("input", input).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ConfigError reports a configuration that could not be loaded or decoded
func ConfigError(operation string, code mdwerror.Code, cause error, details map[string]interface{}) *mdwerror.Error {
	b := NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Cause(cause).
		Code(string(code)).
		Severity(mdwerror.GetSeverityFromCode(code))
	for k, v := range details {
		b.Detail(k, v)
	}
	return b.Build()
}
