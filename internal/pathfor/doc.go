// Package pathfor resolves chapter names to chapter paths and rewrites
// {{#path_for NAME[#ANCHOR]}} placeholders in chapter content.
//
// A run has two passes over the same forest. BuildIndex walks it in document order and
// maps every case-folded chapter name to the chapter's declared path. Rewrite then walks it
// again and replaces each placeholder with the base path joined to the resolved path. The
// index is complete before the first replacement, so a chapter may reference any chapter of
// the book, including ones that come later.
//
// Both passes fail fast. A failed Rewrite leaves every node's content as it was.
package pathfor
