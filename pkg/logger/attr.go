package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Address records an email address under the key "address".
// If addr is empty, it returns an empty Attr.
func Address(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("address", addr)
}

// InvalidChars records an offending character set under the key
// "invalid_chars". If chars is empty, it returns an empty Attr.
func InvalidChars(chars string) slog.Attr {
	if chars == "" {
		return slog.Attr{}
	}
	return slog.String("invalid_chars", chars)
}
