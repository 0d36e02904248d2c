package seedweaver

import "fmt"

// ReadError reports that a fixture file could not be read.
type ReadError struct {
	Path string // Path that was attempted
	Err  error  // Underlying I/O error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read fixture file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ReadError) Unwrap() error { return e.Err }

// UnsupportedDirectiveError reports a tag whose directive is neither ENV nor REF.
type UnsupportedDirectiveError struct {
	Directive string // Name of the unsupported directive
}

// Error implements the error interface.
func (e *UnsupportedDirectiveError) Error() string {
	return fmt.Sprintf("the directive %q is not supported", e.Directive)
}

// MissingEnvError reports an ENV tag whose variable is unset and which
// carries no default.
type MissingEnvError struct {
	Key string // Environment variable name
}

// Error implements the error interface.
func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable %q is not found", e.Key)
}

// UnresolvedRefError reports a REF tag whose label has no registered
// identifier. Defaults never apply to REF.
type UnresolvedRefError struct {
	Key string // Label that failed to resolve
}

// Error implements the error interface.
func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("no record identifier is registered for the key %q", e.Key)
}

// DecodeError reports that the substituted text could not be decoded into
// labeled records.
type DecodeError struct {
	Filename string // File whose content failed to decode
	Err      error  // Underlying decoder error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding failed, check the file %q: %v", e.Filename, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error { return e.Err }

// CallbackError wraps a failure returned by the caller's insertion callback.
// Records inserted before the failing one stay registered.
type CallbackError struct {
	Filename string // File being populated
	Label    string // Label of the record whose insertion failed
	Err      error  // Error returned by the callback
}

// Error implements the error interface.
func (e *CallbackError) Error() string {
	return fmt.Sprintf("insertion failed for record %q in %q: %v", e.Label, e.Filename, e.Err)
}

// Unwrap returns the error produced by the insertion callback.
func (e *CallbackError) Unwrap() error { return e.Err }

// AlreadyLoadedError reports a second Load on a populated StructLoader.
type AlreadyLoadedError struct {
	Filename string
}

// Error implements the error interface.
func (e *AlreadyLoadedError) Error() string {
	return fmt.Sprintf("%s: the records have been loaded already", e.Filename)
}

// NotLoadedError reports a query against a StructLoader before any Load.
type NotLoadedError struct {
	Filename string
}

// Error implements the error interface.
func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("%s: no records have been loaded yet", e.Filename)
}

// RecordNotFoundError reports a lookup for a label absent from a loaded file.
type RecordNotFoundError struct {
	Filename string
	Label    string
}

// Error implements the error interface.
func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("%s: no record was found referred by the key %q", e.Filename, e.Label)
}

// NewReadError creates a new ReadError.
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}

// NewUnsupportedDirectiveError creates a new UnsupportedDirectiveError.
func NewUnsupportedDirectiveError(directive string) *UnsupportedDirectiveError {
	return &UnsupportedDirectiveError{Directive: directive}
}

// NewMissingEnvError creates a new MissingEnvError.
func NewMissingEnvError(key string) *MissingEnvError {
	return &MissingEnvError{Key: key}
}

// NewUnresolvedRefError creates a new UnresolvedRefError.
func NewUnresolvedRefError(key string) *UnresolvedRefError {
	return &UnresolvedRefError{Key: key}
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(filename string, err error) *DecodeError {
	return &DecodeError{Filename: filename, Err: err}
}

// NewCallbackError creates a new CallbackError.
func NewCallbackError(filename, label string, err error) *CallbackError {
	return &CallbackError{Filename: filename, Label: label, Err: err}
}
