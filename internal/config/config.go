// Package config resolves the preprocessor settings from the host's book configuration.
package config

import (
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation"
	ferrors "git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
	"git.home.luguber.info/inful/mdbook-chapter-path/internal/pathfor"
)

// PreprocessorName is the table name under [preprocessor] in book.toml.
const PreprocessorName = "chapter-path"

// Host configuration keys, as dotted paths into book.toml.
const (
	KeySiteURL   = "output.html.site-url"
	KeyBasePath  = "preprocessor." + PreprocessorName + ".base-path"
	KeyStrict    = "preprocessor." + PreprocessorName + ".strict"
	KeyRenderers = "preprocessor." + PreprocessorName + ".renderers"
)

// Config holds the settings of one preprocessor run.
type Config struct {
	BasePath  string   `json:"base_path" yaml:"base_path"`
	Strict    bool     `json:"strict" yaml:"strict"`
	Renderers []string `json:"renderers" yaml:"renderers"`
}

// Default returns the settings used when book.toml says nothing.
func Default() Config {
	return Config{
		BasePath:  "/",
		Strict:    false,
		Renderers: []string{"html"},
	}
}

// FromHost reads the settings out of the host configuration (book.toml as a generic map)
// on top of the defaults. A preprocessor-specific base-path wins over the HTML site-url.
func FromHost(host map[string]any) (Config, error) {
	cfg := Default()
	problems := foundation.Valid()

	if v, ok := lookup(host, KeySiteURL); ok {
		if s, ok := v.(string); ok {
			cfg.BasePath = s
		} else {
			problems.Add(foundation.NewFieldError(KeySiteURL, "type", "must be a string"))
		}
	}
	if v, ok := lookup(host, KeyBasePath); ok {
		if s, ok := v.(string); ok {
			cfg.BasePath = s
		} else {
			problems.Add(foundation.NewFieldError(KeyBasePath, "type", "must be a string"))
		}
	}
	if v, ok := lookup(host, KeyStrict); ok {
		if b, ok := v.(bool); ok {
			cfg.Strict = b
		} else {
			problems.Add(foundation.NewFieldError(KeyStrict, "type", "must be a boolean"))
		}
	}
	if v, ok := lookup(host, KeyRenderers); ok {
		if list, ok := stringList(v); ok {
			cfg.Renderers = list
		} else {
			problems.Add(foundation.NewFieldError(KeyRenderers, "type", "must be a list of strings"))
		}
	}

	if err := problems.ToError(invalidMessage); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadBookTOML parses a book.toml file into the generic map FromHost reads.
func LoadBookTOML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot read book.toml").
			WithContext("file", path).
			Build()
	}
	host := map[string]any{}
	if err := toml.Unmarshal(data, &host); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "book.toml is not valid TOML").
			Fatal().
			WithContext("file", path).
			Build()
	}
	return host, nil
}

const invalidMessage = "invalid preprocessor configuration"

var validators = foundation.NewValidatorChain[Config](
	func(c Config) foundation.ValidationResult {
		res := foundation.Valid()
		if strings.ContainsAny(c.BasePath, " \t\r\n") {
			res.Add(foundation.NewFieldError("base_path", "whitespace", "must not contain whitespace"))
		}
		if strings.ContainsAny(c.BasePath, "#?") {
			res.Add(foundation.NewFieldError("base_path", "fragment", "must not contain a fragment or query"))
		}
		return res
	},
	func(c Config) foundation.ValidationResult {
		switch {
		case len(c.Renderers) == 0:
			return foundation.Invalid(foundation.NewFieldError("renderers", "required", "must name at least one renderer"))
		case slices.Contains(c.Renderers, ""):
			return foundation.Invalid(foundation.NewFieldError("renderers", "empty", "must not contain empty names"))
		}
		return foundation.Valid()
	},
)

// Validate checks the resolved values.
func (c Config) Validate() error {
	return validators.Validate(c).ToError(invalidMessage)
}

// Options converts the settings into the parameter bundle of a run.
func (c Config) Options() pathfor.Options {
	return pathfor.Options{BasePath: c.BasePath, Strict: c.Strict}
}

// Supports reports whether the preprocessor should run for the renderer.
func (c Config) Supports(renderer string) bool {
	return slices.Contains(c.Renderers, renderer)
}

func lookup(m map[string]any, dotted string) (any, bool) {
	parts := strings.Split(dotted, ".")
	var cur any = m
	for _, p := range parts {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = table[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list), true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
