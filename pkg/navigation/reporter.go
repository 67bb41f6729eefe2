package navigation

import (
	"log/slog"
	"sync"
)

// Reporter receives every engine error. Embedders choose what to do with
// them: log, toast, forward to analytics, or swallow.
type Reporter func(*Error)

var reporterMu sync.Mutex
var reporter Reporter
var reporterSet bool

// SetReporter installs the process-wide error reporter. It is effective
// once: the first call wins and returns true, later calls are ignored and
// return false. When unset, errors are logged to the debug channel of the
// default slog logger.
func SetReporter(fn Reporter) bool {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	if reporterSet || fn == nil {
		return false
	}
	reporter = fn
	reporterSet = true
	return true
}

// Report dispatches err to the installed reporter.
func Report(err *Error) {
	if err == nil {
		return
	}
	reporterMu.Lock()
	fn := reporter
	reporterMu.Unlock()
	if fn != nil {
		fn(err)
		return
	}
	slog.Debug("navigation error",
		"code", string(err.Code),
		"coordinator", err.Coordinator,
		"route", err.RouteID,
		"err", err.Message,
	)
}

// SwapReporterForTesting replaces the reporter regardless of whether one is
// installed and returns a restore func. Test-only.
func SwapReporterForTesting(fn Reporter) (restore func()) {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	prev, prevSet := reporter, reporterSet
	reporter, reporterSet = fn, fn != nil
	return func() {
		reporterMu.Lock()
		defer reporterMu.Unlock()
		reporter, reporterSet = prev, prevSet
	}
}
