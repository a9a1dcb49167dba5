// Package diag records the findings of a generator run. Nothing reported
// here stops generation.
package diag

import (
	"fmt"

	"github.com/cometbft/cometbft/libs/log"
)

type Severity uint8

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", s)
	}
}

// Entry is one recorded diagnostic.
type Entry struct {
	Severity Severity
	Method   string // visible method name, empty for schema wide findings
	Message  string
}

// Reporter collects diagnostics in the order they are reported and forwards
// them to a logger.
type Reporter struct {
	logger  log.Logger
	entries []Entry
}

func NewReporter(logger log.Logger) *Reporter {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Reporter{logger: logger}
}

func (r *Reporter) Infof(method, format string, args ...interface{}) {
	r.report(Info, method, fmt.Sprintf(format, args...))
}

func (r *Reporter) Warnf(method, format string, args ...interface{}) {
	r.report(Warn, method, fmt.Sprintf(format, args...))
}

func (r *Reporter) Errorf(method, format string, args ...interface{}) {
	r.report(Error, method, fmt.Sprintf(format, args...))
}

func (r *Reporter) report(s Severity, method, msg string) {
	r.entries = append(r.entries, Entry{Severity: s, Method: method, Message: msg})
	// cometbft loggers have no warn level
	switch s {
	case Error:
		r.logger.Error(msg, "method", method)
	case Warn:
		r.logger.Info(msg, "method", method, "severity", s.String())
	default:
		r.logger.Info(msg, "method", method)
	}
}

// Entries returns the diagnostics recorded so far.
func (r *Reporter) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Count returns how many diagnostics of severity s were recorded.
func (r *Reporter) Count(s Severity) int {
	n := 0
	for _, e := range r.entries {
		if e.Severity == s {
			n++
		}
	}
	return n
}

// For returns the diagnostics recorded for method.
func (r *Reporter) For(method string) []Entry {
	var ret []Entry
	for _, e := range r.entries {
		if e.Method == method {
			ret = append(ret, e)
		}
	}
	return ret
}

// Reset drops every recorded diagnostic.
func (r *Reporter) Reset() {
	r.entries = nil
}
