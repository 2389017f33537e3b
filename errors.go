package aothost

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for host operations.
var (
	// ErrNoContainingFile is returned when a relative module specifier
	// is resolved without the file containing the import.
	ErrNoContainingFile = errors.New("aothost: resolution of a relative module name requires a containing file")

	// ErrResourceNotFound is returned when a resource load targets a
	// path that does not exist.
	ErrResourceNotFound = errors.New("aothost: resource not found")

	// ErrSourceNotInProgram is returned when metadata is requested for
	// a source file that is part of neither the active program nor the
	// filesystem.
	ErrSourceNotInProgram = errors.New("aothost: source file not present in program")
)

// NoContainingFileError reports a relative specifier resolved without a
// containing file.
type NoContainingFileError struct {
	ModuleName string
}

// Error returns the error string.
func (e *NoContainingFileError) Error() string {
	return fmt.Sprintf("aothost: resolution of relative module %q requires a containing file", e.ModuleName)
}

// Is reports whether the target matches ErrNoContainingFile. This
// allows errors.Is(err, ErrNoContainingFile) to return true.
func (e *NoContainingFileError) Is(err error) bool {
	return err == ErrNoContainingFile
}

// ResourceNotFoundError reports a resource load for a missing path.
type ResourceNotFoundError struct {
	Path string
}

// Error returns the error string.
func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("aothost: resource %s not found", e.Path)
}

// Is reports whether the target matches ErrResourceNotFound.
func (e *ResourceNotFoundError) Is(err error) bool {
	return err == ErrResourceNotFound
}

// SourceNotInProgramError reports a metadata request for a source file
// missing from both the active program and the filesystem.
type SourceNotInProgramError struct {
	Path string
}

// Error returns the error string.
func (e *SourceNotInProgramError) Error() string {
	return fmt.Sprintf("aothost: source file %s not present in program", e.Path)
}

// Is reports whether the target matches ErrSourceNotInProgram.
func (e *SourceNotInProgramError) Is(err error) bool {
	return err == ErrSourceNotInProgram
}
