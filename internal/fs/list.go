// Package fs implements the filesystem side of skim: directory listing with
// metadata and the file operation executor (copy, move, rename, trash,
// create-folder).
package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"skim/internal/log"
	"skim/pkg/types"

	"github.com/gobwas/glob"
)

// Lister reads directory entries. Ignore globs are excluded from every
// listing, at the same layer as the hidden-file policy.
type Lister struct {
	ignore []glob.Glob
}

// NewLister creates a Lister with optional ignore patterns.
func NewLister(ignore ...glob.Glob) *Lister {
	return &Lister{ignore: ignore}
}

// List returns the immediate children of dir, sorted with the baseline
// comparator (directories first, then case-insensitive by name).
// An unreadable directory yields an empty slice; callers treat zero entries
// as "verify the directory still exists" when that matters.
func (l *Lister) List(dir string, includeHidden bool) []types.Entry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		log.LogWithFields(log.F("dir", dir), log.F("error", err)).Debug("directory read failed")
		return []types.Entry{}
	}

	entries := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		hidden := strings.HasPrefix(name, ".")
		if hidden && !includeHidden {
			continue
		}
		if l.ignored(name) {
			continue
		}

		path := filepath.Join(dir, name)
		isDir := de.IsDir()
		var size int64
		var modTime time.Time

		info, err := de.Info()
		if err == nil {
			modTime = info.ModTime()
			if !isDir {
				size = info.Size()
			}
			// One level of symlink resolution so a link to a directory is
			// classified as a directory.
			if info.Mode()&os.ModeSymlink != 0 {
				if target, err := os.Stat(path); err == nil {
					isDir = target.IsDir()
					modTime = target.ModTime()
					if isDir {
						size = 0
					} else {
						size = target.Size()
					}
				}
			}
		}

		entries = append(entries, types.Entry{
			Path:    path,
			Name:    name,
			IsDir:   isDir,
			Size:    size,
			ModTime: modTime,
			Kind:    types.KindLabel(name, isDir),
			Hidden:  hidden,
		})
	}

	SortBaseline(entries)
	return entries
}

func (l *Lister) ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// SortBaseline applies the default ordering: directories before files,
// then case-insensitive lexicographic by name within each group.
func SortBaseline(entries []types.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// Exists reports whether path refers to anything on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists reports whether path refers to a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
