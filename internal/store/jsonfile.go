// Package store implements whole-document JSON persistence for the named
// collections. Every save rewrites the full collection; writes go to a
// temporary file in the same directory and are renamed into place so a
// failed write never corrupts previously persisted data.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the collection at path into v. A missing file is initialized
// with def first (load-or-initialize-with-default startup contract).
func Load(path string, v interface{}, def interface{}) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, def); err != nil {
			return fmt.Errorf("initialize %s: %w", path, err)
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Save atomically rewrites the collection at path.
func Save(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", path, err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
