package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPort      = errors.New("invalid port number")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidFilePath  = errors.New("invalid file path")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidFilter    = errors.New("invalid filter expression")
	ErrInvalidDate      = errors.New("invalid date")
	ErrConfigNotFound   = errors.New("config not found")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrConfigExists     = errors.New("config already exists")
	ErrDirCreateFailed  = errors.New("log directory creation failed")
	ErrWriteFailed      = errors.New("log write failed")
	ErrRotateFailed     = errors.New("log rotation failed")
	ErrWriterClosed     = errors.New("log writer closed")
	ErrLineTooLong      = errors.New("line exceeds maximum file size")
	ErrDeliveryFailed   = errors.New("message delivery failed")
)

func NewPortError(port int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPort, port)
}

func NewExtensionError(ext string) error {
	return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
}

func NewDurationError(field, value string) error {
	return fmt.Errorf("%w: field=%s value=%s", ErrInvalidDuration, field, value)
}

// NewDateError reports a day that is not in YYYY-MM-DD form.
func NewDateError(value string, cause error) error {
	return fmt.Errorf("%w: %q: %w", ErrInvalidDate, value, cause)
}

func NewFilterError(src string, cause error) error {
	return fmt.Errorf("%w: %q: %w", ErrInvalidFilter, src, cause)
}

func NewConfigError(field string, value any) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewDirError(dir string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrDirCreateFailed, dir, cause)
}

func NewWriteError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, cause)
}

func NewRotateError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrRotateFailed, path, cause)
}

// NewDeliveryError reports a failed relay to the collector. status is zero for
// transport failures.
func NewDeliveryError(endpoint string, status int, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s: %w", ErrDeliveryFailed, endpoint, cause)
	}
	return fmt.Errorf("%w: %s: status %d", ErrDeliveryFailed, endpoint, status)
}

// NewFileError ties a file-level failure of the given kind to its path.
func NewFileError(kind error, path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", kind, path, cause)
}
