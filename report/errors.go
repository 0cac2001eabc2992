package report

import (
	"fmt"
	"os"

	"github.com/Dev-Re2906/hardhat/pkgmap"
	"github.com/Dev-Re2906/hardhat/resolver"
)

// ReportICE reports an internal invariant violation: a defect, never an
// expected user-facing condition. Always displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true
	displayICE(fmt.Sprintf(message, args...))
}

// ReportFatal reports a fatal configuration error (missing project root,
// unreadable manifest) and terminates the process.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportResolverError renders any error surfaced by the resolution core:
// the closed ProjectRootError/NpmRootError/ImportError taxonomies, pkgmap's
// RemappingError/ManifestError, or a bare *resolver.InternalError /
// *pkgmap.InternalError (treated as an ICE). path is the input the caller
// was trying to resolve, used only for the message prefix.
func ReportResolverError(path string, err error) {
	if rep.logLevel <= LogLevelSilent {
		switch err.(type) {
		case *resolver.InternalError, *pkgmap.InternalError:
			// ICEs are displayed regardless of log level.
		default:
			return
		}
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	switch e := err.(type) {
	case *resolver.InternalError:
		rep.isErr = true
		displayICE(e.Message)
	case *pkgmap.InternalError:
		rep.isErr = true
		displayICE(e.Message)
	case *resolver.ProjectRootError:
		rep.isErr = true
		displayResolverError(path, string(e.Kind), e.Error())
	case *resolver.NpmRootError:
		rep.isErr = true
		displayResolverError(path, string(e.Kind), e.Error())
		for _, re := range e.RemappingErrors {
			displayResolverError(path, "REMAPPING", re.Error())
		}
	case *resolver.ImportError:
		rep.isErr = true
		displayResolverError(path, string(e.Kind), e.Error())
		if e.Suggested != nil {
			displaySuggestion(*e.Suggested)
		}
		for _, re := range e.RemappingErrors {
			displayResolverError(path, "REMAPPING", re.Error())
		}
	case *pkgmap.RemappingError:
		rep.isErr = true
		displayResolverError(path, string(e.Kind), e.Error())
	case *pkgmap.ManifestError:
		rep.isErr = true
		displayResolverError(path, "MANIFEST_ERROR", e.Error())
	default:
		rep.isErr = true
		displayStdError(path, err)
	}
}

// ReportStdError reports a non-fatal, plain Go error (I/O failures not
// otherwise modeled by the core's error taxonomies).
func ReportStdError(path string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true
		displayStdError(path, err)
	}
}

// AnyErrors reports whether any error-level message has been reported.
func AnyErrors() bool {
	return rep.isErr
}

// CatchErrors recovers a panic raised while resolving path and reports it
// as an ICE rather than crashing the process. Must always be deferred.
func CatchErrors(path string) {
	if x := recover(); x != nil {
		if err, ok := x.(error); ok {
			ReportResolverError(path, err)
		} else {
			ReportICE("%v", x)
		}
	}
}
