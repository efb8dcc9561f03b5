// File: standards.go
// Title: Error Standards for the commons packages
// Description: Module identifiers, error codes and the mapping from a module
//              operation to its default code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-03-02 v0.2.0: Codes for segmentation, versions and profiles

package errors

import (
	"strings"

	mdwerror "github.com/msto63/commons/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleVersionx = "versionx"
	ModuleConfig   = "config"
	ModuleProfile  = "profile"
)

// Standardized error codes
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"
	CodeMalformedInput  = "MALFORMED_INPUT"

	CodeStringxInvalidFormat  = "STRINGX_INVALID_FORMAT"
	CodeStringxInvalidPattern = "STRINGX_INVALID_PATTERN"
	CodeStringxLengthExceeded = "STRINGX_LENGTH_EXCEEDED"

	CodeVersionxInvalidFormat = "VERSIONX_INVALID_FORMAT"

	CodeProfileUnknownOperation = "PROFILE_UNKNOWN_OPERATION"
	CodeProfileIncompatible     = "PROFILE_INCOMPATIBLE"
	CodeProfileValidation       = "PROFILE_VALIDATION_FAILED"
)

// getModuleErrorCode returns the default error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleStringx:
		switch {
		case strings.Contains(operation, "pattern"):
			return CodeStringxInvalidPattern
		case strings.Contains(operation, "format"):
			return CodeStringxInvalidFormat
		case strings.Contains(operation, "length"):
			return CodeStringxLengthExceeded
		default:
			return CodeInvalidInput
		}
	case ModuleVersionx:
		if strings.Contains(operation, "parse") {
			return CodeVersionxInvalidFormat
		}
		return CodeInvalidInput
	case ModuleConfig:
		return string(mdwerror.CodeConfigError)
	default:
		return CodeOperationFailed
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
