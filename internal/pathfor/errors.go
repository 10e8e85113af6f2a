package pathfor

import (
	"errors"

	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
)

// Sentinels carried as the cause of the classified errors this package returns.
// Match them with errors.Is.
var (
	ErrDuplicateChapterName = errors.New("duplicate chapter name")
	ErrUnknownChapterName   = errors.New("unknown chapter name")
)

// Context keys attached to chapter errors.
const (
	CtxName         = "name"
	CtxPath         = "path"
	CtxExistingPath = "existing_path"
	CtxReference    = "reference"
	CtxChapter      = "chapter"
	CtxChapterPath  = "chapter_path"
)

func duplicateNameError(name, existingPath, path string) error {
	return ferrors.ChapterError("two chapters share a name and strict mode is on").
		WithCause(ErrDuplicateChapterName).
		WithContext(CtxName, name).
		WithContext(CtxExistingPath, existingPath).
		WithContext(CtxPath, path).
		Build()
}

func unknownNameError(ph Placeholder, n chapterRef) error {
	return ferrors.ChapterError("placeholder references a chapter that does not exist").
		WithCause(ErrUnknownChapterName).
		WithContext(CtxName, ph.Name).
		WithContext(CtxReference, ph.Reference).
		WithContext(CtxChapter, n.name).
		WithContext(CtxChapterPath, n.path).
		Build()
}

// chapterRef identifies the chapter a placeholder was found in.
type chapterRef struct {
	name string
	path string
}
