package emailaddr_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addrspec/addrspec/pkg/emailaddr"
	"github.com/addrspec/addrspec/pkg/logger"
)

func TestValidate(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		addresses := []string{
			"simple@example.com",
			"john.doe@example.com",
			"user+mailbox/department=shipping@example.org",
			"!#$%&'*+-/=?^_`{|}~@example.com",
			"user@example-one.com",
			"user@[192.168.0.1]",
			"user@[IPv6:2001:db8::1]",
			`"john doe"@example.com`,
			`"us\"er"@example.com`,
			"a@b",
			"User@Example.COM",
		}

		v := emailaddr.New()
		for _, addr := range addresses {
			assert.NoError(t, v.Validate(addr), "address should be valid: %s", addr)
		}
	})

	t.Run("malformed addresses", func(t *testing.T) {
		addresses := []string{
			"plainaddress",
			strings.Repeat("a", 255),
			strings.Repeat("a", 250) + "@example.com",
		}

		v := emailaddr.New()
		for _, addr := range addresses {
			err := v.Validate(addr)
			require.Error(t, err, "address should be malformed: %s", addr)
			assert.ErrorIs(t, err, emailaddr.ErrMalformed, "address: %s", addr)
		}
	})

	t.Run("local part errors", func(t *testing.T) {
		addresses := []string{
			".john@example.com",
			"john.@example.com",
			"john..doe@example.com",
			"jo(hn@example.com",
			"a@b@example.com",
			`"a"b"@example.com`,
			strings.Repeat("a", 65) + "@example.com",
		}

		v := emailaddr.New()
		for _, addr := range addresses {
			err := v.Validate(addr)
			require.Error(t, err, "local part should be invalid: %s", addr)
			assert.ErrorIs(t, err, emailaddr.ErrLocalPart, "address: %s", addr)
		}
	})

	t.Run("domain errors", func(t *testing.T) {
		addresses := []string{
			"user@example..com",
			"user@-example.com",
			"user@example-.com",
			"user@exa,mple.com",
			"user@[invalid bracket",
			"user@[192.168.0.1",
			"user@" + strings.Repeat("a", 65) + ".com",
		}

		v := emailaddr.New()
		for _, addr := range addresses {
			err := v.Validate(addr)
			require.Error(t, err, "domain should be invalid: %s", addr)
			assert.ErrorIs(t, err, emailaddr.ErrDomain, "address: %s", addr)
		}
	})

	t.Run("no address provided", func(t *testing.T) {
		err := emailaddr.New().Validate("")
		require.Error(t, err)
		assert.ErrorIs(t, err, emailaddr.ErrAddressNotSet)
	})
}

func TestValidateLengthLimits(t *testing.T) {
	t.Run("any overlong string is malformed regardless of content", func(t *testing.T) {
		v := emailaddr.New()
		for _, addr := range []string{
			strings.Repeat("a", 255),
			strings.Repeat("a", 100) + "@" + strings.Repeat("b", 200),
			strings.Repeat("@", 300),
		} {
			assert.ErrorIs(t, v.Validate(addr), emailaddr.ErrMalformed, "address: %s", addr)
		}
	})

	t.Run("64-character DNS label is accepted, 65 is not", func(t *testing.T) {
		v := emailaddr.New()
		assert.NoError(t, v.Validate("user@"+strings.Repeat("a", 64)+".com"))
		assert.ErrorIs(t, v.Validate("user@"+strings.Repeat("a", 65)+".com"), emailaddr.ErrDomain)
	})

	t.Run("64-character local part is accepted, 65 is not", func(t *testing.T) {
		v := emailaddr.New()
		assert.NoError(t, v.Validate(strings.Repeat("a", 64)+"@example.com"))
		assert.ErrorIs(t, v.Validate(strings.Repeat("a", 65)+"@example.com"), emailaddr.ErrLocalPart)
	})
}

func TestValidateQuotedLocalPart(t *testing.T) {
	v := emailaddr.New()

	t.Run("one embedded escaped quote is accepted", func(t *testing.T) {
		assert.NoError(t, v.Validate(`"us\"er"@example.com`))
	})

	t.Run("three unescaped quotes are rejected", func(t *testing.T) {
		err := v.Validate(`"us"er"@example.com`)
		require.Error(t, err)
		assert.ErrorIs(t, err, emailaddr.ErrLocalPart)
	})
}

func TestValidateSplitsOnLastAt(t *testing.T) {
	// With several @ present, the final one delimits the parts, so the
	// local part `a@b` fails the dot-atom character check.
	err := emailaddr.New().Validate("a@b@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, emailaddr.ErrLocalPart)

	var synErr *emailaddr.SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "@", synErr.InvalidChars)
}

func TestValidateInvalidCharacterDiagnostics(t *testing.T) {
	var synErr *emailaddr.SyntaxError

	err := emailaddr.New().Validate("jo(hn@example.com")
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "(", synErr.InvalidChars)
	assert.Contains(t, synErr.Error(), "invalid characters")

	err = emailaddr.New().Validate("user@exa,mple.com")
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, ",", synErr.InvalidChars)
}

func TestValidateCaseFolding(t *testing.T) {
	t.Run("valid address outcome is case-insensitive", func(t *testing.T) {
		v := emailaddr.New()
		assert.NoError(t, v.Validate("User@Example.com"))
		assert.NoError(t, v.Validate("user@example.com"))
	})

	t.Run("invalid address outcome is case-insensitive", func(t *testing.T) {
		v := emailaddr.New()
		upper := v.Validate("JOHN..DOE@EXAMPLE.COM")
		lower := v.Validate("john..doe@example.com")
		require.Error(t, upper)
		require.Error(t, lower)
		assert.Equal(t, lower.Error(), upper.Error())
	})
}

func TestValidateIdempotent(t *testing.T) {
	v := emailaddr.New()

	first := v.Validate("john..doe@example.com")
	second := v.Validate("john..doe@example.com")
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())

	// Derived state from a failed call must not leak into the next one.
	assert.NoError(t, v.Validate("john.doe@example.com"))
	assert.Error(t, v.Validate("john..doe@example.com"))
}

func TestValidateBoundAddress(t *testing.T) {
	t.Run("empty argument uses the bound address", func(t *testing.T) {
		v := emailaddr.New(emailaddr.WithAddress("Bound@Example.com"))
		assert.NoError(t, v.Validate(""))
	})

	t.Run("different address logs a warning and wins", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		v := emailaddr.New(
			emailaddr.WithAddress("bound@example.com"),
			emailaddr.WithLogger(log),
		)

		assert.NoError(t, v.Validate("other@example.com"))
		assert.Contains(t, buf.String(), "different address")
	})

	t.Run("same address re-passed does not warn", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		v := emailaddr.New(
			emailaddr.WithAddress("bound@example.com"),
			emailaddr.WithLogger(log),
		)

		// Case differences fold away before the comparison.
		assert.NoError(t, v.Validate("BOUND@EXAMPLE.COM"))
		assert.NotContains(t, buf.String(), "different address")
	})
}

func TestIsValid(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		assert.True(t, emailaddr.New().IsValid("john.doe@example.com"))
	})

	t.Run("invalid address logs a diagnostic", func(t *testing.T) {
		var buf bytes.Buffer
		v := emailaddr.New(emailaddr.WithLogger(logger.New(logger.WithOutput(&buf))))

		assert.False(t, v.IsValid("john..doe@example.com"))
		assert.Contains(t, buf.String(), "failed validation")
	})

	t.Run("character-set failure reports the offending set", func(t *testing.T) {
		var buf bytes.Buffer
		v := emailaddr.New(emailaddr.WithLogger(logger.New(logger.WithOutput(&buf))))

		assert.False(t, v.IsValid("a@b@example.com"))
		assert.Contains(t, buf.String(), "invalid_chars")
	})

	t.Run("missing address is flagged as unexpected", func(t *testing.T) {
		var buf bytes.Buffer
		v := emailaddr.New(emailaddr.WithLogger(logger.New(logger.WithOutput(&buf))))

		assert.False(t, v.IsValid(""))
		assert.Contains(t, buf.String(), "unexpected")
	})
}

func TestFastValidate(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		addresses := []string{
			"simple@example.com",
			"john.doe@example.com",
			"user@[192.168.0.1]",
			`"john doe"@example.com`,
		}

		for _, addr := range addresses {
			assert.True(t, emailaddr.FastValidate(addr), "address should be valid: %s", addr)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		addresses := []string{
			"",
			"plainaddress",
			"john..doe@example.com",
			strings.Repeat("a", 65) + "@example.com",
			strings.Repeat("a", 250) + "@example.com",
		}

		for _, addr := range addresses {
			assert.False(t, emailaddr.FastValidate(addr), "address should be invalid: %s", addr)
		}
	})

	t.Run("fast-valid addresses also pass the full pipeline", func(t *testing.T) {
		addresses := []string{
			"simple@example.com",
			"user+tag@example.org",
			"user@[192.168.0.1]",
			`"us\"er"@example.com`,
			"a@b",
		}

		v := emailaddr.New()
		for _, addr := range addresses {
			require.True(t, emailaddr.FastValidate(addr), "address: %s", addr)
			assert.True(t, v.IsValid(addr), "full pipeline disagrees on: %s", addr)
		}
	})
}

// The fast path matches the whole address against the combined addr-spec
// grammar; the full pipeline checks the parts independently after splitting
// on the last @. The modes are documented as independent, and these inputs
// are where they part ways.
func TestFastAndFullModesDiverge(t *testing.T) {
	divergent := []string{
		"john doe@example.com", // white space between atoms passes the per-part character scan
		"@example.com",         // empty local part has no characters to reject
		"user@",                // likewise for the empty domain
		"user@example.com.",    // trailing dot yields an empty final label
	}

	v := emailaddr.New()
	for _, addr := range divergent {
		assert.False(t, emailaddr.FastValidate(addr), "fast mode should reject: %s", addr)
		assert.NoError(t, v.Validate(addr), "full mode should accept: %s", addr)
	}
}

func TestSyntaxErrorKinds(t *testing.T) {
	cases := map[string]error{
		"plainaddress":          emailaddr.ErrMalformed,
		"john..doe@example.com": emailaddr.ErrLocalPart,
		"user@example..com":     emailaddr.ErrDomain,
	}

	v := emailaddr.New()
	for addr, kind := range cases {
		err := v.Validate(addr)
		require.Error(t, err, "address: %s", addr)

		var synErr *emailaddr.SyntaxError
		require.ErrorAs(t, err, &synErr, "address: %s", addr)
		assert.Equal(t, kind, synErr.Kind, "address: %s", addr)
		assert.NotEmpty(t, synErr.Reason, "address: %s", addr)
	}
}
