// Package emailaddr validates the syntax of email addresses against the
// grammar of RFC 5322 and the length limits of RFC 5321. It is a pure
// syntax oracle: no DNS or MX lookups, no mailbox probing, no
// internationalized (RFC 6531) local parts.
//
// # Architecture
//
// Validation runs as a fail-fast three-stage pipeline over a case-folded
// copy of the input:
//
//  1. Base structure – overall length, presence of @, and the split of the
//     address into local part and domain on its last @.
//  2. Local part – length, then either the quoted-string rules (when the
//     part is "..."-delimited) or the dot-atom rules.
//  3. Domain – length, then either the domain-literal rules (when the
//     part is [...]-delimited) or the LDH rules applied per DNS label.
//
// Character-set failures report exactly which characters are illegal: the
// diagnostic helper re-scans the text with the relevant grammar fragment
// from [github.com/addrspec/addrspec/pkg/rfc5322] and returns the sorted
// set difference between the text and everything the fragment matched.
//
// # Usage
//
//	v := emailaddr.New()
//	if err := v.Validate("john.doe@example.com"); err != nil {
//	    var synErr *emailaddr.SyntaxError
//	    if errors.As(err, &synErr) {
//	        // synErr.Kind is one of ErrMalformed, ErrLocalPart, ErrDomain
//	    }
//	}
//
//	// Boolean convenience wrappers:
//	ok := v.IsValid("a@b@example.com")            // false, logs the reason
//	ok = emailaddr.FastValidate("a@example.com")  // single-pass grammar match
//
// # Error Handling
//
// All failures are *SyntaxError values wrapping one of the closed sentinel
// kinds (ErrAddressNotSet, ErrMalformed, ErrLocalPart, ErrDomain,
// ErrInternal), so callers select branches with errors.Is while keeping
// the human-readable reason and the offending character set.
//
// Validate and FastValidate are deliberately independent modes: the fast
// path requires the whole address to match the combined addr-spec grammar
// in one pass, while the full pipeline checks each part separately after
// splitting on the last @. The two do not agree on every pathological
// input, and the package makes no claim that they do.
//
// # Thread Safety
//
// The grammar patterns are immutable shared data. A Validator carries
// per-call state (the derived local part and domain), so concurrent
// callers should each use their own instance; FastValidate is stateless.
package emailaddr
