package resolver

import "fmt"

// ProjectRootErrorKind is the closed enumeration for resolveProjectFile
// failures.
type ProjectRootErrorKind string

const (
	ProjectRootFileNotInProject      ProjectRootErrorKind = "PROJECT_ROOT_FILE_NOT_IN_PROJECT"
	ProjectRootFileDoesntExist       ProjectRootErrorKind = "PROJECT_ROOT_FILE_DOESNT_EXIST"
	ProjectRootFileInNodeModules     ProjectRootErrorKind = "PROJECT_ROOT_FILE_IN_NODE_MODULES"
)

// ProjectRootError is returned by ResolveProjectFile.
type ProjectRootError struct {
	Kind ProjectRootErrorKind
	Path string
}

func (e *ProjectRootError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// NpmRootErrorKind is the closed enumeration for
// resolveNpmDependencyFileAsRoot failures.
type NpmRootErrorKind string

const (
	NpmRootFileNameWithInvalidFormat        NpmRootErrorKind = "NPM_ROOT_FILE_NAME_WITH_INVALID_FORMAT"
	NpmRootFileResolvesToProjectFile         NpmRootErrorKind = "NPM_ROOT_FILE_RESOLVES_TO_PROJECT_FILE"
	NpmRootFileOfUninstalledPackage          NpmRootErrorKind = "NPM_ROOT_FILE_OF_UNINSTALLED_PACKAGE"
	NpmRootFileOfPackageWithRemappingErrors   NpmRootErrorKind = "NPM_ROOT_FILE_OF_PACKAGE_WITH_REMAPPING_ERRORS"
	NpmRootFileDoesntExistWithinItsPackage    NpmRootErrorKind = "NPM_ROOT_FILE_DOESNT_EXIST_WITHIN_ITS_PACKAGE"
	NpmRootFileWithIncorrectCasing            NpmRootErrorKind = "NPM_ROOT_FILE_WITH_INCORRECT_CASING"
	NpmRootFileNonExportedFile                NpmRootErrorKind = "NPM_ROOT_FILE_NON_EXPORTED_FILE"
)

// NpmRootError is returned by ResolveNpmDependencyFileAsRoot.
type NpmRootError struct {
	Kind           NpmRootErrorKind
	Module         string
	CorrectCasing  string
	RemappingErrors []error
}

func (e *NpmRootError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Module)
}

// ImportErrorKind is the closed enumeration for resolveImport failures.
type ImportErrorKind string

const (
	ImportWithWindowsPathSeparators     ImportErrorKind = "IMPORT_WITH_WINDOWS_PATH_SEPARATORS"
	IllegalRelativeImport               ImportErrorKind = "ILLEGAL_RELATIVE_IMPORT"
	ImportDoesntExist                   ImportErrorKind = "IMPORT_DOESNT_EXIST"
	ImportInvalidCasing                 ImportErrorKind = "IMPORT_INVALID_CASING"
	ImportWithInvalidNpmSyntax          ImportErrorKind = "IMPORT_WITH_INVALID_NPM_SYNTAX"
	ImportOfUninstalledPackage          ImportErrorKind = "IMPORT_OF_UNINSTALLED_PACKAGE"
	ImportOfNpmPackageWithRemappingErrors ImportErrorKind = "IMPORT_OF_NPM_PACKAGE_WITH_REMAPPING_ERRORS"
	ImportOfNonExportedNpmFile          ImportErrorKind = "IMPORT_OF_NON_EXPORTED_NPM_FILE"
)

// SuggestedRemapping is the {context, prefix, target} triple attached to
// the pure-local direct-import diagnostic: the import string as prefix and
// the source name of the directory where a file at that literal path was
// found as target, with an empty context. It is not checked against the
// remappings.txt validation rules (the prefix need not end in '/').
type SuggestedRemapping struct {
	Context string
	Prefix  string
	Target  string
}

// ImportError is returned by ResolveImport.
type ImportError struct {
	Kind ImportErrorKind

	From       string
	Import     string

	// CorrectCasing is set for ImportInvalidCasing.
	CorrectCasing string

	// RemappingErrors is set for ImportOfNpmPackageWithRemappingErrors.
	RemappingErrors []error

	// Suggested is set for the pure-local direct-import diagnostic
	// variant of ImportDoesntExist.
	Suggested *SuggestedRemapping
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s: %s (from %s)", e.Kind, e.Import, e.From)
}

// InternalError models the "bug" channel, distinct from the closed error
// taxonomies above: it indicates a defect, e.g. the package map losing
// track of a package the Resolver just created.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error (defect, not a user error): " + e.Message
}
