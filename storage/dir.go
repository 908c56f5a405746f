package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// validKey restricts keys to names that are safe as file names.
var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Dir is a Storage in a folder: each key is a "<key>.json" file.
type Dir struct {
	path string
}

// OpenDir opens (or creates) the folder at path.
func OpenDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("cannot create store folder %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) filename(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(d.path, key+".json"), nil
}

func (d *Dir) Load(key string) ([]byte, error) {
	filename, err := d.filename(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return data, nil
}

// Save writes a temporary file, then renames it over the key file.
func (d *Dir) Save(key string, data []byte) error {
	filename, err := d.filename(key)
	if err != nil {
		return err
	}
	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}

func (d *Dir) Delete(key string) error {
	filename, err := d.filename(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot delete %q: %w", filename, err)
	}
	return nil
}

// Close is a no-op, files are closed after each operation.
func (d *Dir) Close() error { return nil }
