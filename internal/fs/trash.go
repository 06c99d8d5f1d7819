package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"skim/internal/errors"
)

// defaultTrashDir returns the user trash root per the freedesktop spec
// ($XDG_DATA_HOME/Trash, usually ~/.local/share/Trash).
func defaultTrashDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "Trash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "Trash")
}

// moveToTrash moves path into trashRoot/files and writes the matching
// .trashinfo record so desktop environments can restore it. The name is
// uniquified inside the trash if something with the same name is already
// there.
func moveToTrash(path, trashRoot string) error {
	if trashRoot == "" {
		return errors.NewOpError("trash unavailable", path, errors.IOFailure, nil)
	}
	stat, err := os.Lstat(path)
	if err != nil {
		return errors.ClassifyOp("trash failed", path, err)
	}

	filesDir := filepath.Join(trashRoot, "files")
	infoDir := filepath.Join(trashRoot, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.ClassifyOp("trash failed", path, err)
		}
	}

	name := UniqueName(filesDir, filepath.Base(path), stat.IsDir())
	target := filepath.Join(filesDir, name)

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		path, time.Now().Format("2006-01-02T15:04:05"))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return errors.ClassifyOp("trash failed", path, err)
	}

	if err := os.Rename(path, target); err != nil {
		os.Remove(infoPath)
		return errors.ClassifyOp("trash failed", path, err)
	}
	return nil
}
