// Package errors provides the classified error primitives used across the chapter-path
// preprocessor.
//
// Every failure that reaches the command line is a ClassifiedError: it carries a category
// (config, input, chapter, ...), a severity, a retry hint and structured context that points
// at the offending chapter or configuration key. The CLI adapter turns the category into an
// exit code and a one-line message for mdBook to show.
//
// Example usage:
//
//	err := errors.ChapterError("unknown chapter name").
//		WithContext("name", name).
//		WithContext("chapter", chapterName).
//		WithCause(pathfor.ErrUnknownChapterName).
//		Build()
package errors
