package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if classified, ok := AsClassified(err); ok {
		return a.exitCodeFromClassified(classified)
	}

	// Fallback for unclassified errors
	return 1
}

// exitCodeFromClassified maps ClassifiedError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromClassified(err *ClassifiedError) int {
	switch err.Category() {
	case CategoryUnsupported:
		return 1 // mdBook reads this as "renderer not supported"
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryChapter:
		return 3 // Book content error
	case CategoryInput:
		return 4 // Malformed host input
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem:
		return 11 // I/O error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
// Negative capability answers format to an empty string.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if classified, ok := AsClassified(err); ok {
		return a.formatClassified(classified)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatClassified formats a ClassifiedError for display.
func (a *CLIErrorAdapter) formatClassified(err *ClassifiedError) string {
	if err.Category() == CategoryUnsupported && !a.verbose {
		return ""
	}
	if a.verbose {
		return appendContext(err.Error(), err.Context())
	}

	switch err.Category() {
	case CategoryChapter, CategoryConfig, CategoryValidation, CategoryInput:
		return appendContext("Error: "+err.Message(), err.Context())
	default:
		return fmt.Sprintf("Error: %s: %s", err.Category(), err.Message())
	}
}

// appendContext renders context as sorted key="value" pairs so the author can find the
// offending chapter or key.
func appendContext(msg string, ctx ErrorContext) string {
	if len(ctx) == 0 {
		return msg
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(msg)
	b.WriteString(" (")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%q", k, fmt.Sprint(ctx[k]))
	}
	b.WriteString(")")
	return b.String()
}

// Report logs and prints err to w and returns the exit code the process should use.
func (a *CLIErrorAdapter) Report(err error, w io.Writer) int {
	if err == nil {
		return 0
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	if message := a.FormatError(err); message != "" {
		_, _ = fmt.Fprintln(w, message)
	}
	return a.ExitCodeFor(err)
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	os.Exit(a.Report(err, os.Stderr))
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if classified, ok := AsClassified(err); ok {
		// The printed message already covers what the author must fix.
		if classified.Category() == CategoryChapter || classified.Category() == CategoryUnsupported {
			return false
		}
		return classified.Severity() == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if classified, ok := AsClassified(err); ok {
		level := a.slogLevelFromSeverity(classified.Severity())
		attrs := []slog.Attr{
			slog.String("category", string(classified.Category())),
		}
		if classified.Cause() != nil {
			attrs = append(attrs, slog.String("cause", classified.Cause().Error()))
		}

		a.logger.LogAttrs(context.Background(), level, classified.Message(), attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts ClassifiedError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError, SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
