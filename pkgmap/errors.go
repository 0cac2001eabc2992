package pkgmap

import "fmt"

// RemappingErrorKind is the closed enumeration of remapping-discovery
// failure modes.
type RemappingErrorKind string

const (
	RemappingWithInvalidSyntax         RemappingErrorKind = "REMAPPING_WITH_INVALID_SYNTAX"
	RemappingToUninstalledPackage      RemappingErrorKind = "REMAPPING_TO_UNINSTALLED_PACKAGE"
	IllegalRemappingWithoutSlashEndings RemappingErrorKind = "ILLEGAL_REMAPPING_WITHOUT_SLASH_ENDINGS"
)

// RemappingError is a single structured failure discovered while parsing
// and resolving a package's remappings.txt files.
type RemappingError struct {
	Kind RemappingErrorKind

	// Source is the absolute path of the offending remappings.txt.
	Source string

	// Line is the verbatim, trimmed offending line.
	Line string
}

func (e *RemappingError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Source, e.Line)
}

// ManifestError reports that a package.json could not be read or parsed.
// It is not part of the closed remapping taxonomy: a missing or corrupt
// manifest is a precondition failure, not a user-remapping mistake.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("package manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// InternalError models the "bug" channel: invariant violations distinct
// from the enumerated error taxonomy. Construction code that detects one
// of these panics with *InternalError; New recovers it at the public
// boundary and returns it as the sole error.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error (defect, not a user error): " + e.Message
}

func panicInternal(format string, args ...any) {
	panic(&InternalError{Message: fmt.Sprintf(format, args...)})
}
