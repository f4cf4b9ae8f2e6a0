package gausslog

import "fmt"

// MalformedNumberError reports a numeric token that could not be
// decoded. It escalates to a SectionParseError for the section that
// contained the token.
type MalformedNumberError struct {
	Token string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number %q", e.Token)
}

// SectionParseError reports a violation of one section's grammar. The
// section's sub-record is omitted from the Report and parsing continues
// with the remaining sections.
type SectionParseError struct {
	Section SectionKind
	Line    int // 1-based line in the source stream
	Err     error
}

func (e *SectionParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %v", e.Section, e.Line, e.Err)
}

func (e *SectionParseError) Unwrap() error { return e.Err }

// InconsistentAtomRecordError reports a cross-check mismatch between an
// atom-indexed row and the canonical atom identity. The row is kept;
// the mismatch is recorded as a diagnostic.
type InconsistentAtomRecordError struct {
	Section SectionKind
	Atom    int
	Got     string
	Want    string
}

func (e *InconsistentAtomRecordError) Error() string {
	return fmt.Sprintf("%s: atom %d: symbol %q does not match canonical %q",
		e.Section, e.Atom, e.Got, e.Want)
}

// DanglingAtomReferenceError reports an atom-indexed row that points at
// an index not present in the canonical atom list. The containing
// sub-record is dropped from the Report.
type DanglingAtomReferenceError struct {
	Section SectionKind
	Atom    int
}

func (e *DanglingAtomReferenceError) Error() string {
	return fmt.Sprintf("%s: reference to nonexistent atom %d", e.Section, e.Atom)
}

// IncompleteJobError is the only fatal parse failure: no atom list
// could be extracted, so nothing else in the log can be bound.
type IncompleteJobError struct {
	Err error
}

func (e *IncompleteJobError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("incomplete job: %v", e.Err)
	}
	return "incomplete job: no atom table or geometry could be extracted"
}

func (e *IncompleteJobError) Unwrap() error { return e.Err }
