// Package validate walks a typed Expression tree and accumulates structural
// diagnostics (spec.md §4.6), the way the reference planner walks a parsed
// event stream and accumulates plan-time errors without ever panicking on
// malformed input (_examples/opal-lang-opal/runtime/planner/planner.go).
package validate

import "github.com/cab-lang/cab/cst"

// Severity classifies a Report. The core only ever produces errors; the
// type exists so a future lint-level diagnostic has somewhere to live.
type Severity uint8

const (
	SeverityError Severity = iota
)

// LabelRole distinguishes a Label that anchors the diagnostic from one that
// adds supporting context (spec.md §6.2).
type LabelRole uint8

const (
	LabelPrimary LabelRole = iota
	LabelSecondary
)

// Label attaches a Span to a Report with a role and a short message.
type Label struct {
	Span    cst.Span
	Role    LabelRole
	Message string
}

// Report is a structured diagnostic: a severity, a message, zero or more
// Labels, and optional tip/help/context entries (spec.md §6.2).
type Report struct {
	Severity Severity
	Message  string
	Labels   []Label
	Tip      string
	Help     string
	Context  map[string]string
}

// New builds an empty error-severity Report with the given message.
func New(message string) Report {
	return Report{Severity: SeverityError, Message: message}
}

// IsEmpty reports whether no labels have been attached.
func (r Report) IsEmpty() bool { return len(r.Labels) == 0 }

// WithLabel appends a Label and returns the Report, so callers can build a
// diagnostic in one expression.
func (r Report) WithLabel(role LabelRole, span cst.Span, message string) Report {
	r.Labels = append(r.Labels, Label{Span: span, Role: role, Message: message})
	return r
}

func (r Report) WithTip(tip string) Report { r.Tip = tip; return r }
func (r Report) WithHelp(help string) Report { r.Help = help; return r }

func (r Report) WithContext(key, value string) Report {
	if r.Context == nil {
		r.Context = make(map[string]string, 1)
	}
	r.Context[key] = value
	return r
}

// Sink collects Reports during a validation walk (spec.md §6.1's
// "sink: &mut Vec<Report>").
type Sink struct {
	Reports []Report
}

func (s *Sink) Emit(r Report) { s.Reports = append(s.Reports, r) }
