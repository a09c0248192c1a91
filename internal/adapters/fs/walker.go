// Package fs provides file system adapters for listing, hashing and atomically writing files.
package fs

import (
	"iter"
	"os"
	"strings"
)

// Walker lists the contents of an installation directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// ListFiles yields the regular files directly inside dir, by base name, in
// lexical order. Hidden files, which include the index and in-flight temporary
// files, are skipped. Subdirectories are not entered. A missing or unreadable
// dir yields nothing.
func (w *Walker) ListFiles(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			name := e.Name()
			if strings.HasPrefix(name, ".") || !e.Type().IsRegular() {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}
