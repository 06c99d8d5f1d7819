package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skim/internal/errors"
	"skim/internal/log"
	"skim/pkg/types"

	cp "github.com/otiai10/copy"
)

// Executor performs file operations against the local filesystem.
// Every operation returns per-item results with kinded errors; callers that
// want the classic silent behavior just log them and reload the directory.
type Executor struct {
	trashDir string
}

// NewExecutor creates an Executor using the platform trash location.
func NewExecutor() *Executor {
	return &Executor{trashDir: defaultTrashDir()}
}

// NewExecutorWithTrash creates an Executor trashing into dir, for tests.
func NewExecutorWithTrash(dir string) *Executor {
	return &Executor{trashDir: dir}
}

// UniqueName returns a name that does not collide inside dir, probing
// "name 2", "name 3", ... The counter goes before the extension for files
// and at the end for directories. Dotfiles like .bashrc count as having no
// extension.
func UniqueName(dir, name string, isDir bool) string {
	if !Exists(filepath.Join(dir, name)) {
		return name
	}

	ext := ""
	base := name
	if !isDir {
		ext = filepath.Ext(name)
		base = strings.TrimSuffix(name, ext)
		if base == "" {
			base, ext = name, ""
		}
	}
	for counter := 2; ; counter++ {
		candidate := fmt.Sprintf("%s %d%s", base, counter, ext)
		if !Exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

// Copy copies each source into the destination directory, uniquifying the
// target name on collision. Directories are copied recursively.
func (e *Executor) Copy(sources []string, destination string) []types.OpResult {
	results := make([]types.OpResult, 0, len(sources))
	for _, src := range sources {
		info, statErr := os.Stat(src)
		if statErr != nil {
			err := errors.ClassifyOp("copy failed", src, statErr)
			log.LogWithFields(log.F("source", src), log.F("error", err)).Warn("copy failed")
			results = append(results, types.OpResult{Source: src, Err: err})
			continue
		}

		name := UniqueName(destination, filepath.Base(src), info.IsDir())
		target := filepath.Join(destination, name)

		var err error
		if copyErr := cp.Copy(src, target); copyErr != nil {
			err = errors.ClassifyOp("copy failed", src, copyErr)
			log.LogWithFields(log.F("source", src), log.F("error", err)).Warn("copy failed")
		} else {
			log.LogWithFields(log.F("source", src), log.F("target", target)).Debug("copied")
		}
		results = append(results, types.OpResult{Source: src, Target: target, Err: err})
	}
	return results
}

// Move moves each source into the destination directory, uniquifying the
// target name on collision.
func (e *Executor) Move(sources []string, destination string) []types.OpResult {
	results := make([]types.OpResult, 0, len(sources))
	for _, src := range sources {
		if filepath.Dir(filepath.Clean(src)) == filepath.Clean(destination) {
			// Moving into its own directory is not an error, just nothing
			// to do.
			results = append(results, types.OpResult{Source: src, Target: src})
			continue
		}

		isDir := false
		if info, statErr := os.Stat(src); statErr == nil {
			isDir = info.IsDir()
		}
		name := UniqueName(destination, filepath.Base(src), isDir)
		target := filepath.Join(destination, name)

		var err error
		if renameErr := os.Rename(src, target); renameErr != nil {
			err = errors.ClassifyOp("move failed", src, renameErr)
			log.LogWithFields(log.F("source", src), log.F("error", err)).Warn("move failed")
		} else {
			log.LogWithFields(log.F("source", src), log.F("target", target)).Debug("moved")
		}
		results = append(results, types.OpResult{Source: src, Target: target, Err: err})
	}
	return results
}

// Rename renames source in place within its parent directory. An empty or
// unchanged name is a no-op; a collision is reported, never uniquified.
func (e *Executor) Rename(source, newName string) types.OpResult {
	current := filepath.Base(source)
	if newName == "" {
		return types.OpResult{
			Source: source,
			Err:    errors.NewOpError("rename rejected", source, errors.InvalidName, nil),
		}
	}
	if newName == current {
		return types.OpResult{Source: source, Target: source}
	}

	target := filepath.Join(filepath.Dir(source), newName)
	if Exists(target) {
		return types.OpResult{
			Source: source,
			Target: target,
			Err:    errors.NewOpError("rename rejected", target, errors.NameConflict, nil),
		}
	}
	if err := os.Rename(source, target); err != nil {
		return types.OpResult{
			Source: source,
			Target: target,
			Err:    errors.ClassifyOp("rename failed", source, err),
		}
	}
	log.LogWithFields(log.F("source", source), log.F("target", target)).Debug("renamed")
	return types.OpResult{Source: source, Target: target}
}

// Delete moves each source to the trash rather than deleting permanently.
func (e *Executor) Delete(sources []string) []types.OpResult {
	results := make([]types.OpResult, 0, len(sources))
	for _, src := range sources {
		err := moveToTrash(src, e.trashDir)
		if err != nil {
			log.LogWithFields(log.F("source", src), log.F("error", err)).Warn("trash failed")
		} else {
			log.LogWithFields(log.F("source", src)).Debug("trashed")
		}
		results = append(results, types.OpResult{Source: src, Err: err})
	}
	return results
}

// CreateFolder creates a directory named name inside destination. An empty
// name or an existing same-named object is reported, never uniquified.
func (e *Executor) CreateFolder(destination, name string) types.OpResult {
	if name == "" {
		return types.OpResult{
			Err: errors.NewOpError("create folder rejected", destination, errors.InvalidName, nil),
		}
	}

	target := filepath.Join(destination, name)
	if Exists(target) {
		return types.OpResult{
			Target: target,
			Err:    errors.NewOpError("create folder rejected", target, errors.NameConflict, nil),
		}
	}
	if err := os.Mkdir(target, 0755); err != nil {
		return types.OpResult{
			Target: target,
			Err:    errors.ClassifyOp("create folder failed", target, err),
		}
	}
	log.LogWithFields(log.F("target", target)).Debug("folder created")
	return types.OpResult{Target: target}
}
