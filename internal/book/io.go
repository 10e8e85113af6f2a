package book

import (
	"encoding/json"
	"fmt"
	"io"

	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
)

// ReadInput decodes the [context, book] array mdBook sends to a preprocessor.
func ReadInput(r io.Reader) (*Context, *Book, error) {
	var pair []json.RawMessage
	if err := json.NewDecoder(r).Decode(&pair); err != nil {
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryInput, "preprocessor input is not a JSON array").Fatal().Build()
	}
	if len(pair) != 2 {
		return nil, nil, ferrors.InputError(fmt.Sprintf("preprocessor input must hold 2 elements, got %d", len(pair))).Build()
	}

	ctx := &Context{}
	if err := json.Unmarshal(pair[0], ctx); err != nil {
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryInput, "cannot decode preprocessor context").Fatal().Build()
	}
	b := &Book{}
	if err := json.Unmarshal(pair[1], b); err != nil {
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryInput, "cannot decode book").Fatal().Build()
	}
	return ctx, b, nil
}

// WriteBook encodes the book the way mdBook expects it back on stdout.
func WriteBook(w io.Writer, b *Book) error {
	if err := json.NewEncoder(w).Encode(b); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "cannot encode book").Fatal().Build()
	}
	return nil
}
