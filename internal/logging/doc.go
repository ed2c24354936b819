// Package logging builds the slog loggers used by propman.
//
// Diagnostics always go to stderr so that a document preview written to
// stdout can be piped or redirected untouched. On a terminal the text
// handler colours levels and attribute keys; JSON output is available for
// scripts and for the optional log file.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//	})
//	logger.Info("property found", "property", "status", "line", 4)
//
// Tests should use [ForTest] so output is attached to the test, and quiet
// mode uses [NewDiscard].
package logging
