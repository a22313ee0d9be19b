package domain

import "fmt"

// DiagKind classifies the non-fatal degradations a store pipeline can hit.
type DiagKind int

const (
	// MissingOptionalInput: a reference table, or the journal itself, is
	// absent. Only the related enrichment or grouping dimension degrades.
	MissingOptionalInput DiagKind = iota
	// MalformedValue: an unparseable price or date, coerced to 0 or null.
	MalformedValue
	// UnrecognizedSchema: an expected column was absent under any casing
	// and a default column was substituted.
	UnrecognizedSchema
	// StructuralFailure: the store directory or its storage is unreadable.
	// The store is skipped; sibling stores are unaffected.
	StructuralFailure
)

func (k DiagKind) String() string {
	switch k {
	case MissingOptionalInput:
		return "missing optional input"
	case MalformedValue:
		return "malformed value"
	case UnrecognizedSchema:
		return "unrecognized schema"
	case StructuralFailure:
		return "structural failure"
	}
	return "unknown"
}

// Diagnostic is a human-readable warning tied to one store and one element
// of its extract. Diagnostics never abort a run.
type Diagnostic struct {
	Kind    DiagKind `json:"kind"`
	Store   string   `json:"store"`
	Subject string   `json:"subject"`
	Detail  string   `json:"detail,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("store %s: %s: %s", d.Store, d.Kind, d.Subject)
	}
	return fmt.Sprintf("store %s: %s: %s (%s)", d.Store, d.Kind, d.Subject, d.Detail)
}
