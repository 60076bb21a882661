// Package rfc5322 declares the textual grammar of RFC 5322 addr-spec as a
// set of regular expression fragments, composed bottom-up exactly as the RFC
// builds its ABNF productions: primitive tokens first (white space, CRLF,
// quoted pairs), then comments and folding white space, atoms and dot-atoms,
// quoted strings, domain literals, and finally the full addr-spec.
//
// # Architecture
//
// The fragments live in a single const block whose declaration order is the
// dependency order. Because Go constant expressions may only reference
// previously usable constants, a fragment that tried to reach forward would
// not compile; the topological build order is therefore enforced by the
// compiler rather than by convention.
//
// The compiled exported patterns are the handful of exact-match and detector
// expressions an address validator needs: the whole-address matcher, the
// dot-placement and hyphen-placement detectors, the bare dot-atom matcher
// shared by local-part and DNS-label character checks, and the quoted-string
// and domain-literal exact matchers. The package also exports the RFC 5321
// length limits for addresses, local parts, domains, and DNS labels.
//
// # Usage
//
//	if !rfc5322.AddrSpec.MatchString(addr) {
//	    // not a syntactically valid address
//	}
//	if len(addr) > rfc5322.MaxAddressLength {
//	    // exceeds the RFC 5321 ceiling
//	}
//
// # Thread Safety
//
// The package holds no mutable state. All patterns are compiled once during
// package initialization and are read-only thereafter, so they may be shared
// freely across goroutines.
package rfc5322
