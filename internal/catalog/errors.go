package catalog

// ErrKind is the closed set of operation failure kinds. The HTTP layer maps
// each kind to a status exactly once; nothing is retried.
type ErrKind int

const (
	KindValidation ErrKind = iota + 1
	KindNotFound
	KindInternal
)

// Error carries a failure kind and a human-readable summary. Operations
// return it as a value; it never escapes as a panic.
type Error struct {
	Kind    ErrKind
	Message string
	Detail  string
}

func (e *Error) Error() string { return e.Message }

func validationErr(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFoundErr(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func internalErr(msg string, cause error) *Error {
	e := &Error{Kind: KindInternal, Message: msg}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}
