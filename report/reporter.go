// Package report is the diagnostic output layer surrounding the resolution
// core: it never participates in resolution itself, only renders the
// structured errors the core returns (or panics via the internal-error
// channel) to the user.
package report

import "sync"

// Reporter serializes diagnostic output so it can be called safely from
// multiple goroutines (e.g. a CLI driving several resolutions concurrently)
// and tracks whether any error-level message has been reported.
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter. Must be one of the
	// enumerated log levels below.
	logLevel int

	// Indicates whether or not an error has been reported.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors.
	LogLevelWarn           // Displays only warnings and errors.
	LogLevelVerbose        // Displays all diagnostic messages (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter at the given log level. If
// the reporter has already been initialized, this is a no-op.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{
			m:        &sync.Mutex{},
			logLevel: logLevel,
			isErr:    false,
		}
	}
}
