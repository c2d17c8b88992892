// Package storage persists whole-document JSON files. Writes go through
// a temp file and rename so a crash mid-write cannot leave a half-written
// document, and multi-file mutations commit through a marker file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PersistenceError reports an I/O or parse failure against a document.
// A file that is merely absent is not an error; a present-but-unreadable
// or corrupt file always is.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Load reads the JSON document at path into v. It returns false with a
// nil error when the file does not exist, leaving v untouched so the
// caller can start from an empty document.
func Load(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &PersistenceError{Op: "read", Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &PersistenceError{Op: "parse", Path: path, Err: err}
	}
	return true, nil
}

// Encode renders v the way Save writes it.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, &PersistenceError{Op: "encode", Path: "", Err: err}
	}
	return append(data, '\n'), nil
}

// Save overwrites the document at path atomically.
func Save(path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Op: "mkdir", Path: dir, Err: err}
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Op: "write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &PersistenceError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
