package bumperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVersion indicates the target version was not provided.
	ErrMissingVersion = errors.New("VERSION environment variable is not set")

	// ErrInvalidVersion indicates the target version is not of the form
	// majorVersion.minorVersion.buildVersion-qualifier.
	ErrInvalidVersion = errors.New("invalid version format")

	// ErrRead indicates an error occurred while reading.
	ErrRead = errors.New("read")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("file: %w", ErrRead)

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrNoMatch indicates a rewrite rule did not match the file content.
	ErrNoMatch = errors.New("pattern not found")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnknownTarget indicates a target name that is not part of the plan.
	ErrUnknownTarget = errors.New("unknown target")
)
