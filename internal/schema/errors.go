package schema

import "fmt"

// ErrorKind enumerates the taxonomy of recoverable input failures (§7).
// InternalError is deliberately not a member here: it is a Go error
// returned from the pipeline, not a recovered ValidationError.
type ErrorKind string

const (
	KindInputParse         ErrorKind = "InputParse"
	KindInvalidSchema      ErrorKind = "InvalidSchema"
	KindInvalidField       ErrorKind = "InvalidField"
	KindDuplicateID        ErrorKind = "DuplicateId"
	KindCatalogueMismatch  ErrorKind = "CatalogueMismatch"
	KindInconsistentDays   ErrorKind = "InconsistentDays"
)

// ValidationError is one structured validation failure. Field is a
// JSON-path-ish locator ("people[2].id"), kept best-effort rather than
// a strict pointer syntax.
type ValidationError struct {
	Kind    ErrorKind `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ValidationErrors collects every failure found in one validation pass
// so the caller can report all of them instead of failing fast on the
// first.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	if len(es) == 0 {
		return "no validation errors"
	}
	return fmt.Sprintf("%d validation error(s), first: %s", len(es), es[0].Error())
}

func (es *ValidationErrors) add(kind ErrorKind, field, format string, args ...interface{}) {
	*es = append(*es, ValidationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)})
}
