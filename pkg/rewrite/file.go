package rewrite

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/databricks/databricks-jdbc/pkg/bumperrors"
)

// File is a concurrency-safe rewriter of files on disk.
var File = &file{}

type file struct {
	mu sync.Mutex
}

// Result describes the outcome of applying a [Rule] to a file.
type Result struct {
	Path string
	Rule string
	// Previous is the version literal found before rewriting, if any.
	Previous     string
	Replacements int
	// Changed reports whether the new content differs from the old.
	Changed bool
	// Written reports whether the new content was written to disk.
	Written bool
}

// Matched reports whether the rule found anything to replace.
func (r Result) Matched() bool {
	return r.Replacements > 0
}

// Rewrite reads path, applies rule with version, and writes the result back
// with the file's existing permissions. Nothing is written when the content
// is unchanged or when dryRun is set.
func (f *file) Rewrite(path string, rule *Rule, version string, dryRun bool) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := Result{Path: path, Rule: rule.Name}

	fi, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("%w %q: %w", bumperrors.ErrReadFile, path, err)
	}

	content, err := os.ReadFile(path) //nolint:gosec // Paths come from the target plan.
	if err != nil {
		return res, fmt.Errorf("%w %q: %w", bumperrors.ErrReadFile, path, err)
	}

	res.Previous, _ = rule.Find(content)

	updated, n := rule.Apply(content, version)
	res.Replacements = n
	res.Changed = !bytes.Equal(content, updated)

	if !res.Changed || dryRun {
		return res, nil
	}

	if err := os.WriteFile(path, updated, fi.Mode().Perm()); err != nil {
		return res, fmt.Errorf("%w %q: %w", bumperrors.ErrWriteFile, path, err)
	}

	res.Written = true

	return res, nil
}

// Find reads path and returns the version literal the rule currently
// matches.
func (f *file) Find(path string, rule *Rule) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	content, err := os.ReadFile(path) //nolint:gosec // Paths come from the target plan.
	if err != nil {
		return "", false, fmt.Errorf("%w %q: %w", bumperrors.ErrReadFile, path, err)
	}

	v, ok := rule.Find(content)

	return v, ok, nil
}
