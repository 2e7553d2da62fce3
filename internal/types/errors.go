package types

import "fmt"

// UnsupportedFormatError is returned when a file is not in a format that can
// be decoded.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedFileError is returned when a file's structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s: corrupted file: %s", e.Path, e.Reason)
}

// InvalidInputTypeError is returned when a jam argument is neither a file
// path nor a loaded JAMS object.
type InvalidInputTypeError struct {
	// Type is the Go type of the rejected value, as printed by %T.
	Type string
}

func (e *InvalidInputTypeError) Error() string {
	return "invalid input type: " + e.Type
}

// KeyError is returned when a key is missing from the muda sandbox.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("muda sandbox: key %q not found", e.Key)
}

// Warning represents a non-fatal issue.
//
// Warnings never stop an operation. They are reported through the package
// logger and, where an operation returns them, alongside its result.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "sandbox", "decode", "resample"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
