package lines

import (
	"errors"
	"fmt"
)

// UnsupportedVersionError is returned if the file header does not match
// one of the supported versions.
type UnsupportedVersionError struct {
	// Header is the trimmed header string found in the file.
	Header string
	// Legacy is set for the multi-page format that predates version 3.
	Legacy bool
}

// NewUnsupportedVersion creates an UnsupportedVersionError for the given header.
func NewUnsupportedVersion(header string, legacy bool) error {
	return UnsupportedVersionError{Header: header, Legacy: legacy}
}

func (u UnsupportedVersionError) Error() string {
	if u.Legacy {
		return fmt.Sprintf("unsupported legacy format: %q", u.Header)
	}
	return fmt.Sprintf("unsupported version: %q", u.Header)
}

// IsUnsupportedVersion checks if the given error is an UnsupportedVersionError.
func IsUnsupportedVersion(err error) bool {
	var u UnsupportedVersionError
	return errors.As(err, &u)
}

// UnknownBrushError is returned for a brush code without mapping.
type UnknownBrushError struct {
	Code int32
}

// NewUnknownBrush creates an UnknownBrushError.
func NewUnknownBrush(code int32) error {
	return UnknownBrushError{code}
}

func (u UnknownBrushError) Error() string {
	return fmt.Sprintf("unknown brush type %d", u.Code)
}

// IsUnknownBrush checks if the given error is an UnknownBrushError.
func IsUnknownBrush(err error) bool {
	var u UnknownBrushError
	return errors.As(err, &u)
}

// UnknownColorError is returned for a color code without mapping.
type UnknownColorError struct {
	Code int32
}

// NewUnknownColor creates an UnknownColorError.
func NewUnknownColor(code int32) error {
	return UnknownColorError{code}
}

func (u UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color %d", u.Code)
}

// IsUnknownColor checks if the given error is an UnknownColorError.
func IsUnknownColor(err error) bool {
	var u UnknownColorError
	return errors.As(err, &u)
}

// TruncatedError means the input ended before a field could be read completely.
type TruncatedError struct {
	// Field names what was being read.
	Field string
	Err   error
}

func (t TruncatedError) Error() string {
	return fmt.Sprintf("failed to read %v: %v", t.Field, t.Err)
}

func (t TruncatedError) Unwrap() error {
	return t.Err
}

// IsTruncated checks if the given error is a TruncatedError.
func IsTruncated(err error) bool {
	var t TruncatedError
	return errors.As(err, &t)
}

// InvalidCountError is returned if an element count in the input is negative.
type InvalidCountError struct {
	Field string
	Count int32
}

func (i InvalidCountError) Error() string {
	return fmt.Sprintf("invalid number of %v: %d", i.Field, i.Count)
}

// IsInvalidCount checks if the given error is an InvalidCountError.
func IsInvalidCount(err error) bool {
	var i InvalidCountError
	return errors.As(err, &i)
}

// InvalidSegmentError is returned when a segment index has no following point.
type InvalidSegmentError struct {
	Index     int
	NumPoints int
}

func (i InvalidSegmentError) Error() string {
	return fmt.Sprintf("invalid segment index %d for line with %d points", i.Index, i.NumPoints)
}

// IsInvalidSegment checks if the given error is an InvalidSegmentError.
func IsInvalidSegment(err error) bool {
	var i InvalidSegmentError
	return errors.As(err, &i)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
