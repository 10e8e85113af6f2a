package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID         = "run_id"
	KeyChapter       = "chapter"
	KeyPath          = "path"
	KeyExistingPath  = "existing_path"
	KeyName          = "name"
	KeyReference     = "reference"
	KeyRenderer      = "renderer"
	KeyBasePath      = "base_path"
	KeyStrict        = "strict"
	KeyChapters      = "chapters"
	KeyPlaceholders  = "placeholders"
	KeyDurationMS    = "duration_ms"
	KeyMDBookVersion = "mdbook_version"
	KeyFile          = "file"
	KeyError         = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr            { return slog.String(KeyRunID, id) }
func Chapter(name string) slog.Attr        { return slog.String(KeyChapter, name) }
func Path(p string) slog.Attr              { return slog.String(KeyPath, p) }
func ExistingPath(p string) slog.Attr      { return slog.String(KeyExistingPath, p) }
func Name(n string) slog.Attr              { return slog.String(KeyName, n) }
func Reference(r string) slog.Attr         { return slog.String(KeyReference, r) }
func Renderer(r string) slog.Attr          { return slog.String(KeyRenderer, r) }
func BasePath(p string) slog.Attr          { return slog.String(KeyBasePath, p) }
func Strict(s bool) slog.Attr              { return slog.Bool(KeyStrict, s) }
func Chapters(n int) slog.Attr             { return slog.Int(KeyChapters, n) }
func Placeholders(n int) slog.Attr         { return slog.Int(KeyPlaceholders, n) }
func MDBookVersion(v string) slog.Attr     { return slog.String(KeyMDBookVersion, v) }
func File(f string) slog.Attr              { return slog.String(KeyFile, f) }
func DurationMS(ms float64) slog.Attr      { return slog.Float64(KeyDurationMS, ms) }
func Since(start time.Time) slog.Attr      { return DurationMS(float64(time.Since(start).Microseconds()) / 1000) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
