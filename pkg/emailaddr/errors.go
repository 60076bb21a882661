package emailaddr

import "errors"

// The closed set of failure kinds a validation can produce. Callers select
// on them with errors.Is; the kinds carried by a *SyntaxError are always one
// of these sentinels.
var (
	// ErrAddressNotSet is returned when no address is available to
	// validate, neither bound at construction nor passed to the call.
	ErrAddressNotSet = errors.New("no address to validate")

	// ErrMalformed is returned when the overall shape is invalid: the
	// address is too long, the @ separator is missing, or (fast mode) the
	// whole string fails the addr-spec grammar.
	ErrMalformed = errors.New("malformed address")

	// ErrLocalPart is returned for local-part violations: excessive
	// length, bad quoting, bad dot placement, or illegal characters.
	ErrLocalPart = errors.New("invalid local part")

	// ErrDomain is returned for domain violations: excessive length, bad
	// literal bracket syntax, bad dot or hyphen placement, or illegal
	// characters in a DNS label.
	ErrDomain = errors.New("invalid domain")

	// ErrInternal marks a defect in the validator or its caller rather
	// than a problem with the input, e.g. a pipeline stage invoked before
	// the base stage split the address.
	ErrInternal = errors.New("internal validator error")
)

// SyntaxError describes a single validation failure. Kind is one of the
// sentinel errors above; Reason explains the violated rule; InvalidChars
// carries the offending characters, sorted, when the failure is a
// character-set violation and is empty otherwise.
type SyntaxError struct {
	Kind         error
	Reason       string
	InvalidChars string
}

func (e *SyntaxError) Error() string {
	if e.InvalidChars != "" {
		return e.Reason + ": invalid characters `" + e.InvalidChars + "`"
	}
	return e.Reason
}

// Unwrap exposes the failure kind so that errors.Is(err, ErrDomain) and
// friends work on wrapped errors.
func (e *SyntaxError) Unwrap() error { return e.Kind }

func newSyntaxError(kind error, reason string) *SyntaxError {
	return &SyntaxError{Kind: kind, Reason: reason}
}

func newCharsetError(kind error, reason, invalid string) *SyntaxError {
	return &SyntaxError{Kind: kind, Reason: reason, InvalidChars: invalid}
}
