package pow

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

const (
	// ErrInvalidBlockSize indicates a block size of zero was given. No coordinate can
	// be derived from it.
	ErrInvalidBlockSize = ErrorKind("ErrInvalidBlockSize")

	// ErrNoResult indicates NoResult was given where a found coordinate was expected.
	ErrNoResult = ErrorKind("ErrNoResult")

	// ErrOutsideBlock indicates a result does not encode any coordinate of the block.
	ErrOutsideBlock = ErrorKind("ErrOutsideBlock")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error wraps an ErrorKind with a description of the offending input.
type Error struct {
	Description string
	Err         error
}

func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func powError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
