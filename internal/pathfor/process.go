package pathfor

import "git.home.luguber.info/inful/mdbook-chapter-path/internal/chapter"

// Options is the parameter bundle for one run.
type Options struct {
	BasePath string
	Strict   bool
}

// DefaultOptions returns the options used when the host configures nothing.
func DefaultOptions() Options {
	return Options{BasePath: "/"}
}

// Result is what a successful run produced besides the rewritten content.
type Result struct {
	Index       *Index
	Resolutions []Resolution
}

// Process builds the index over the whole forest and then rewrites it.
func Process(nodes []*chapter.Node, opts Options) (*Result, error) {
	idx, err := BuildIndex(nodes, opts.Strict)
	if err != nil {
		return nil, err
	}
	res := &Result{Index: idx}
	err = RewriteWith(nodes, idx, opts.BasePath, func(r Resolution) {
		res.Resolutions = append(res.Resolutions, r)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
