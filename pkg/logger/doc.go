// Package logger provides nil-safe slog attribute constructors shared by the
// module's operational logging. Helpers return an empty Attr for zero inputs,
// which slog drops silently, so call sites stay free of nil checks.
package logger
