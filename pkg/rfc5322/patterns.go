package rfc5322

import "regexp"

// Length limits from RFC 5321 section 4.5.3.1 plus the practical 254-octet
// path ceiling (RFC 3696 erratum 1690).
const (
	// MaxAddressLength is the maximum length of a complete address.
	MaxAddressLength = 254
	// MaxLocalPartLength is the maximum length of the local part.
	MaxLocalPartLength = 64
	// MaxDomainLength is the maximum length of the domain.
	MaxDomainLength = 255
	// MaxLabelLength is the maximum length of a single DNS label.
	MaxLabelLength = 64
)

// Grammar fragments mirroring the ABNF productions of RFC 5322 section 3,
// with the primitive tokens taken from RFC 5234 appendix B.1. Each fragment
// is a non-capturing regular expression source string built only from
// fragments declared above it; constant expressions cannot reference later
// constants, so the compiler enforces the bottom-up composition order.
//
// Two productions deviate from a literal ABNF transcription: comment content
// omits the recursive COMMENT alternative (RFC 5322 section 3.2.2 defines
// ccontent circularly, which a regular language cannot express), and the
// character classes are spelled as printable US-ASCII ranges.
const (
	// wsp is a single whitespace character (RFC 5322 section 2.2.2).
	wsp = `\s`

	// crlf is a carriage return and line feed pair (section 2.2.3).
	crlf = `(?:\r\n)`

	// quotedPair is a backslash escape for any character (section 3.2.1).
	quotedPair = `(?:\\.)`

	// fws is folding white space (section 3.2.2).
	fws = `(?:(?:` + wsp + `*` + crlf + `)?` + wsp + `+)`

	// ctext is printable US-ASCII excluding `(`, `)` and `\`.
	ctext    = `[\x21-\x27\x2A-\x5B\x5D-\x7E]`
	ccontent = `(?:` + ctext + `|` + quotedPair + `)`
	comment  = `\((?:` + fws + `?` + ccontent + `)*` + fws + `?\)`

	// cfws is white space optionally interleaved with parenthesized
	// comments (section 3.2.2).
	cfws = `(?:(?:(?:` + fws + `?` + comment + `)+` + fws + `?)|` + fws + `)`

	// atext is printable US-ASCII excluding the specials (section 3.2.3).
	// \x60 is the backtick.
	atext       = `[a-zA-Z0-9!#$%&'*+\-/=?^_\x60{|}~]`
	atom        = cfws + `?` + atext + `+` + cfws + `?`
	dotAtomText = atext + `+(?:\.` + atext + `+)*`
	dotAtom     = cfws + `?` + dotAtomText + cfws + `?`

	// qtext is printable US-ASCII excluding `"` and `\` (section 3.2.4).
	qtext        = `[\x21\x23-\x5B\x5D-\x7E]`
	qcontent     = `(?:` + qtext + `|` + quotedPair + `)`
	quotedString = cfws + `?"(?:` + fws + `?` + qcontent + `)*` + fws + `?"` + cfws + `?`

	// localPart and domain follow addr-spec (section 3.4.1).
	localPart     = `(?:` + dotAtom + `|` + quotedString + `)`
	dtext         = `[\x21-\x5A\x5E-\x7E]`
	domainLiteral = cfws + `?\[(?:` + fws + `?` + dtext + `)*` + fws + `?\]` + cfws + `?`
	domain        = `(?:` + dotAtom + `|` + domainLiteral + `)`
	addrSpec      = `(` + localPart + `)@(` + domain + `)`
)

// Compiled patterns used by the validator. All are built once at package
// initialization and are immutable afterwards, so they are safe to share
// across goroutines.
var (
	// AddrSpec matches a string that is exactly one addr-spec.
	AddrSpec = regexp.MustCompile(`^` + addrSpec + `$`)

	// UnquotedLocalPartDots detects the dot placements an unquoted local
	// part must not contain: leading, trailing, or consecutive dots.
	UnquotedLocalPartDots = regexp.MustCompile(`^\.|\.{2,}|\.$`)

	// DotAtom matches dot-atom runs anywhere in a string. It backs the
	// character-set checks for both unquoted local parts and DNS labels;
	// RFC 5322 deliberately gives the two the same grammar.
	DotAtom = regexp.MustCompile(dotAtom)

	// QuotedLocalPart matches a string that is exactly one quoted-string.
	QuotedLocalPart = regexp.MustCompile(`^` + quotedString + `$`)

	// LabelDots detects DNS labels separated by more than a single dot.
	LabelDots = regexp.MustCompile(`\.{2,}`)

	// LabelHyphens detects a DNS label that begins or ends with a hyphen,
	// which the LDH rule forbids.
	LabelHyphens = regexp.MustCompile(`^-|-$`)

	// DomainName checks the character set of a named (non-literal) domain
	// label. It is the dot-atom grammar under another name.
	DomainName = DotAtom

	// DomainLiteral matches a string that is exactly one domain-literal.
	DomainLiteral = regexp.MustCompile(`^` + domainLiteral + `$`)
)
