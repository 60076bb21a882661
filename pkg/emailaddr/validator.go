package emailaddr

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/addrspec/addrspec/pkg/logger"
	"github.com/addrspec/addrspec/pkg/rfc5322"
)

// Validator checks the syntax of an email address against RFC 5322, with
// the practical length limits of RFC 5321. It performs no network lookups
// and no deliverability checks; it is a pure syntax oracle.
//
// Addresses are case-folded before validation: receiving hosts must deliver
// case-insensitively, so the oracle treats the whole address that way.
//
// A Validator is cheap to construct and holds only per-call state, so each
// concurrent caller should use its own instance.
type Validator struct {
	addr        string
	boundAtInit bool
	log         *slog.Logger

	// Populated by the base stage; the later stages refuse to run on an
	// unsplit address.
	localPart string
	domain    string
	split     bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithAddress binds an address at construction time. Binding is a
// convenience for single-use validators; prefer passing the address to
// Validate directly.
func WithAddress(address string) Option {
	return func(v *Validator) {
		v.addr = strings.ToLower(address)
		v.boundAtInit = address != ""
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to
// slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{log: slog.Default()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs the full validation pipeline: base structure, then local
// part, then domain. It returns nil for a syntactically valid address and a
// *SyntaxError describing the first violated rule otherwise.
//
// An empty argument means "validate the address bound at construction"; if
// none was bound, the call fails with ErrAddressNotSet. Passing a different
// address than the bound one is caller misuse: the call logs a warning and
// proceeds with the new address.
func (v *Validator) Validate(address string) error {
	if address == "" {
		if v.addr == "" {
			return newSyntaxError(ErrAddressNotSet,
				"the address to validate must be set at construction or passed to Validate")
		}
	} else {
		folded := strings.ToLower(address)
		if v.boundAtInit && folded != v.addr {
			v.log.Warn("validating a different address than the one bound at construction",
				slog.String("bound", v.addr),
				logger.Address(folded),
			)
		}
		v.addr = folded
	}

	// Derived parts never survive across calls.
	v.localPart, v.domain, v.split = "", "", false

	if err := v.validateBase(false); err != nil {
		return err
	}
	if err := v.validateLocalPart(); err != nil {
		return err
	}
	return v.validateDomain()
}

// IsValid reports whether address is syntactically valid. Expected
// validation failures are logged and yield false; any other failure is
// logged at error level as a suspected defect before also yielding false.
func (v *Validator) IsValid(address string) bool {
	err := v.Validate(address)
	if err == nil {
		return true
	}

	if isExpected(err) {
		v.log.Info("address failed validation",
			logger.Address(address),
			logger.Error(err),
			logger.InvalidChars(invalidCharsOf(err)),
		)
		return false
	}

	v.log.Error("unexpected error while validating address",
		logger.Address(address),
		logger.Error(err),
	)
	return false
}

// FastValidate reports whether address fully matches the addr-spec grammar
// in a single pass and respects the RFC 5321 part lengths. It skips the
// split-and-diagnose machinery of Validate and emits no diagnostics for
// ordinary invalid input.
//
// The two modes are specified independently and do not agree on every
// input: Validate checks local part and domain separately after splitting
// on the last @, which is more permissive for inputs such as folding white
// space inside an unquoted local part or an empty domain.
func FastValidate(address string) bool {
	if address == "" {
		return false
	}

	v := New(WithAddress(address))
	err := v.validateBase(true)
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrMalformed) {
		v.log.Error("unexpected error while fast-validating address",
			logger.Address(address),
			logger.Error(err),
		)
	}
	return false
}

// validateBase checks the overall shape of the address. In fast mode the
// whole string must match addr-spec and both parts must respect their
// length limits; nothing is retained. In full mode the address is split on
// its last @ so the later stages can examine each part independently.
func (v *Validator) validateBase(fast bool) error {
	if v.addr == "" {
		return newSyntaxError(ErrInternal, "base stage invoked without an address")
	}

	if len(v.addr) > rfc5322.MaxAddressLength {
		return newSyntaxError(ErrMalformed, fmt.Sprintf(
			"the address cannot be longer than %d characters", rfc5322.MaxAddressLength))
	}

	if fast {
		if !rfc5322.AddrSpec.MatchString(v.addr) {
			return newSyntaxError(ErrMalformed,
				"invalid syntax for address `"+v.addr+"`")
		}
		local, domain := splitAddress(v.addr)
		if len(local) > rfc5322.MaxLocalPartLength || len(domain) > rfc5322.MaxDomainLength {
			return newSyntaxError(ErrMalformed,
				"invalid syntax for address `"+v.addr+"`")
		}
		return nil
	}

	if !strings.Contains(v.addr, "@") {
		return newSyntaxError(ErrMalformed,
			"expecting an address of the form `localpart@domainname`")
	}

	// With more than one @ present, the last one delimits the parts.
	v.localPart, v.domain = splitAddress(v.addr)
	v.split = true
	return nil
}

// splitAddress splits an address on its last @. The caller guarantees one
// is present.
func splitAddress(addr string) (localPart, domain string) {
	i := strings.LastIndexByte(addr, '@')
	return addr[:i], addr[i+1:]
}

func (v *Validator) validateLocalPart() error {
	if !v.split {
		return newSyntaxError(ErrInternal, "local-part stage invoked before the base stage split the address")
	}

	if len(v.localPart) > rfc5322.MaxLocalPartLength {
		return newSyntaxError(ErrLocalPart, fmt.Sprintf(
			"the local part cannot be longer than %d characters", rfc5322.MaxLocalPartLength))
	}

	if strings.HasPrefix(v.localPart, `"`) && strings.HasSuffix(v.localPart, `"`) {
		return v.validateLocalPartQuoted()
	}
	return v.validateLocalPartUnquoted()
}

func (v *Validator) validateLocalPartQuoted() error {
	if countUnescapedQuotes(v.localPart) > 2 {
		return newSyntaxError(ErrLocalPart,
			"quoted local part `"+v.localPart+"` must contain a single quoted string: "+
				`at most two unescaped " characters are allowed`)
	}

	if invalid := invalidChars(v.localPart, rfc5322.QuotedLocalPart); invalid != "" {
		return newCharsetError(ErrLocalPart,
			"invalid syntax for quoted local part `"+v.localPart+"`", invalid)
	}
	return nil
}

// countUnescapedQuotes counts the " characters of s that are not part of a
// backslash escape. An escaped quote is quoted-pair content, not a string
// delimiter, so it does not count against the single-quoted-string rule.
func countUnescapedQuotes(s string) int {
	n := 0
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			n++
		}
	}
	return n
}

func (v *Validator) validateLocalPartUnquoted() error {
	if rfc5322.UnquotedLocalPartDots.MatchString(v.localPart) {
		return newSyntaxError(ErrLocalPart,
			"unquoted local part `"+v.localPart+"` cannot begin or end with a dot, "+
				"or contain consecutive dots")
	}

	if invalid := invalidChars(v.localPart, rfc5322.DotAtom); invalid != "" {
		return newCharsetError(ErrLocalPart,
			"invalid syntax for unquoted local part `"+v.localPart+"`", invalid)
	}
	return nil
}

func (v *Validator) validateDomain() error {
	if !v.split {
		return newSyntaxError(ErrInternal, "domain stage invoked before the base stage split the address")
	}

	if len(v.domain) > rfc5322.MaxDomainLength {
		return newSyntaxError(ErrDomain, fmt.Sprintf(
			"the domain cannot be longer than %d characters", rfc5322.MaxDomainLength))
	}

	// A domain literal carries an IP address between square brackets
	// instead of a name.
	if strings.HasPrefix(v.domain, "[") && strings.HasSuffix(v.domain, "]") {
		return v.validateDomainLiteral()
	}
	return v.validateDomainName()
}

func (v *Validator) validateDomainLiteral() error {
	if !rfc5322.DomainLiteral.MatchString(v.domain) {
		return newSyntaxError(ErrDomain,
			"invalid domain literal syntax in `"+v.domain+"`")
	}
	// TODO: distinguish IPv4 from tagged IPv6 literals per RFC 5321
	// section 4.1.3 once literal contents are checked structurally.
	return nil
}

// validateDomainName checks a named domain against the LDH rule: a sequence
// of single-dot-separated labels, each within the length limit, not
// hyphen-delimited, and drawn from the dot-atom character set.
func (v *Validator) validateDomainName() error {
	if rfc5322.LabelDots.MatchString(v.domain) {
		return newSyntaxError(ErrDomain,
			"DNS labels in `"+v.domain+"` must be separated by a single dot")
	}

	for _, label := range strings.Split(v.domain, ".") {
		if len(label) > rfc5322.MaxLabelLength {
			return newSyntaxError(ErrDomain, fmt.Sprintf(
				"DNS labels in `%s` cannot be longer than %d characters", v.domain, rfc5322.MaxLabelLength))
		}

		if rfc5322.LabelHyphens.MatchString(label) {
			return newSyntaxError(ErrDomain,
				"DNS labels in `"+v.domain+"` cannot begin or end with a hyphen")
		}

		if invalid := invalidChars(label, rfc5322.DomainName); invalid != "" {
			return newCharsetError(ErrDomain,
				"invalid characters in DNS label `"+label+"` of domain `"+v.domain+"`", invalid)
		}
	}
	return nil
}

// isExpected reports whether err is an ordinary validation verdict rather
// than a defect. ErrAddressNotSet is deliberately not expected: reaching it
// through IsValid means the caller never supplied an address at all.
func isExpected(err error) bool {
	return errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrLocalPart) ||
		errors.Is(err, ErrDomain)
}

// invalidCharsOf extracts the offending character set from a validation
// error, if it carries one.
func invalidCharsOf(err error) string {
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.InvalidChars
	}
	return ""
}
