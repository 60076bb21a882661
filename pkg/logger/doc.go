// Package logger provides a small factory around Go's slog package with
// functional options for configuration, plus helper attribute constructors
// used for validation diagnostics.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("address failed validation",
//	    logger.Address("user@example..com"),
//	    logger.Error(err),
//	)
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum log level.
//   - WithOutput – output destination (defaults to stderr).
//   - WithAttr – static attributes attached to every record.
//
// Attribute helpers (Error, Address, InvalidChars) return an empty
// slog.Attr for zero-valued inputs, which handlers drop, so call sites can
// pass them unconditionally.
package logger
