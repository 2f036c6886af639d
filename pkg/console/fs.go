package console

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gobwas/glob"

	"cmdkit/pkg/errors"
)

// Catalog maps handler identifiers (file names without extension) to the
// descriptors they stand for.
type Catalog map[string]*Descriptor

// FSOption configures RegisterFS.
type FSOption func(*fsConfig)

type fsConfig struct {
	pattern string
}

// WithPattern only considers file names matching a glob such as "*.go".
func WithPattern(pattern string) FSOption {
	return func(c *fsConfig) {
		c.pattern = pattern
	}
}

// RegisterFS registers one command per qualifying file in dir. Directories
// and dot-files are skipped; the file name without extension is the handler
// identifier, resolved through catalog and registered under its inferred
// name. Listing errors are returned; an identifier missing from catalog
// panics with a registration failure.
func (r *Registry) RegisterFS(fsys fs.FS, dir string, catalog Catalog, opts ...FSOption) ([]string, error) {
	cfg := fsConfig{pattern: "*"}
	for _, opt := range opts {
		opt(&cfg)
	}
	matcher, err := glob.Compile(cfg.pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", cfg.pattern, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		filename := entry.Name()
		if entry.IsDir() || strings.HasPrefix(filename, ".") || !matcher.Match(filename) {
			continue
		}
		ident := strings.TrimSuffix(filename, path.Ext(filename))
		d, ok := catalog[ident]
		if !ok {
			panic(errors.Newf(errors.KindRegistration, "'%s' does not reference a known handler", ident).
				WithSubject(ident).
				WithContext("file", path.Join(dir, filename)))
		}
		names = append(names, r.Register(d, Infer(ident)))
	}
	return names, nil
}
