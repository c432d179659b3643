package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrBundleNotFound ErrorType = iota
	ErrMetadataRead
	ErrAttachmentRead
	ErrOutputWrite
	ErrInvalidConfig
	ErrSigning
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrBundleNotFound:
		return "BundleNotFound"
	case ErrMetadataRead:
		return "MetadataRead"
	case ErrAttachmentRead:
		return "AttachmentRead"
	case ErrOutputWrite:
		return "OutputWrite"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrSigning:
		return "Signing"
	default:
		return "Unknown"
	}
}

// PatchError represents an error during patch definition generation.
// Path names the bundle, manifest, attachment or output file involved.
type PatchError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *PatchError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *PatchError) Unwrap() error {
	return e.Err
}

// IsErrorType reports whether err wraps a PatchError of type t
func IsErrorType(err error, t ErrorType) bool {
	var pe *PatchError
	if errors.As(err, &pe) {
		return pe.Type == t
	}
	return false
}
