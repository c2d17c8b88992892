package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Update is one document rewrite inside a multi-file commit.
type Update struct {
	Path string
	Data []byte
}

// Commit rewrites several documents as one transactional step. Each
// payload is staged next to its target, a marker file records the
// targets, and only then are the staged files renamed into place. The
// marker is the commit point: Recover rolls a marker forward and
// discards stages that never reached one, so a crash anywhere in
// between cannot leave the targets inconsistent with each other.
func Commit(markerPath string, updates ...Update) error {
	for _, u := range updates {
		if dir := filepath.Dir(u.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return &PersistenceError{Op: "mkdir", Path: dir, Err: err}
			}
		}
		if err := os.WriteFile(stagePath(u.Path), u.Data, 0o644); err != nil {
			return &PersistenceError{Op: "stage", Path: u.Path, Err: err}
		}
	}

	targets := make([]string, len(updates))
	for i, u := range updates {
		targets[i] = u.Path
	}
	marker, err := json.Marshal(targets)
	if err != nil {
		return &PersistenceError{Op: "encode", Path: markerPath, Err: err}
	}
	if err := writeAtomic(markerPath, marker); err != nil {
		discardStages(targets)
		return err
	}

	return finishCommit(markerPath, targets)
}

func finishCommit(markerPath string, targets []string) error {
	for _, target := range targets {
		stage := stagePath(target)
		if _, err := os.Stat(stage); errors.Is(err, os.ErrNotExist) {
			continue // already renamed
		}
		if err := os.Rename(stage, target); err != nil {
			return &PersistenceError{Op: "rename", Path: target, Err: err}
		}
	}
	if err := os.Remove(markerPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &PersistenceError{Op: "remove", Path: markerPath, Err: err}
	}
	return nil
}

// Recover completes or discards an interrupted commit. Call it once at
// startup before opening any store. A present marker means the commit
// had been decided, so the remaining staged files are renamed into
// place; stages without a marker are leftovers and are deleted.
func Recover(markerPath string, documentPaths ...string) error {
	data, err := os.ReadFile(markerPath)
	if errors.Is(err, os.ErrNotExist) {
		discardStages(documentPaths)
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "read", Path: markerPath, Err: err}
	}

	var targets []string
	if err := json.Unmarshal(data, &targets); err != nil {
		return &PersistenceError{Op: "parse", Path: markerPath, Err: err}
	}
	return finishCommit(markerPath, targets)
}

func stagePath(path string) string { return path + ".staged" }

func discardStages(targets []string) {
	for _, target := range targets {
		os.Remove(stagePath(target))
	}
}
