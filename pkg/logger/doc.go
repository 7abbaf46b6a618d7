// Package logger builds structured *slog.Logger instances from functional
// options.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format, applies the minimum level and attaches static attributes.
// Helper constructors in attr.go keep attribute names consistent across the
// command-line tools:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "cryptokit"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Error("decrypt failed", logger.Operation("decrypt"), logger.Error(err))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
//
// The cryptographic packages never log. Only callers such as cmd/cryptokit do.
package logger
