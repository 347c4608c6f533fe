// Package store persists arrangements as YAML files named after the
// arrangement, one per file, in a single data directory.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mj1618/winlayout/internal/model"
	"gopkg.in/yaml.v3"
)

// Ext is the file extension of stored arrangements.
const Ext = ".yaml"

var (
	// ErrNotFound is returned when no arrangement is stored under a name.
	ErrNotFound = errors.New("arrangement does not exist")
	// ErrNameMismatch is returned when a file's name field differs from the
	// name it is stored under.
	ErrNameMismatch = errors.New("'name' property in file does not match expected name")
)

// Store reads and writes arrangements below Dir.
type Store struct {
	Dir string
}

// New returns a store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+Ext)
}

// Load reads the arrangement stored under name.
func (s *Store) Load(name string) (*model.Arrangement, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading data from file: %w", err)
	}
	return decode(name, data)
}

func decode(name string, data []byte) (*model.Arrangement, error) {
	var rec model.Arrangement
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("error parsing file contents as YAML: %w", err)
	}
	if rec.Name != name {
		return nil, fmt.Errorf("%w (file %q, name %q)", ErrNameMismatch, name+Ext, rec.Name)
	}
	if rec.Windows == nil {
		rec.Windows = []model.WindowSpec{}
	}
	return &rec, nil
}

// Save writes rec under rec.Name, replacing any previous version.
func (s *Store) Save(rec *model.Arrangement) error {
	if err := model.ValidateName(rec.Name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("error formatting data as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error formatting data as YAML: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+rec.Name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("error writing data to file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing data to file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing data to file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(rec.Name)); err != nil {
		return fmt.Errorf("error writing data to file: %w", err)
	}
	return nil
}

// Problem describes a file in the data directory that could not be listed.
type Problem struct {
	File string
	Err  error
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %v", p.File, p.Err)
}

func (p Problem) Unwrap() error { return p.Err }

// Listing is the result of List.
type Listing struct {
	Names    []string
	Problems []Problem
}

// List returns the names of all valid arrangements, sorted. Files that fail
// to parse or whose name does not match are reported in Problems instead.
func (s *Store) List() (Listing, error) {
	listing := Listing{Names: []string{}}
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return listing, nil
	}
	if err != nil {
		return listing, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(fileName, Ext) || strings.HasPrefix(fileName, ".") {
			continue
		}
		name := strings.TrimSuffix(fileName, Ext)
		if _, err := s.Load(name); err != nil {
			listing.Problems = append(listing.Problems, Problem{File: fileName, Err: err})
			continue
		}
		listing.Names = append(listing.Names, name)
	}
	sort.Strings(listing.Names)
	return listing, nil
}

// Remove deletes the arrangement stored under name. It reports false if
// there was nothing to delete.
func (s *Store) Remove(name string) (bool, error) {
	if err := model.ValidateName(name); err != nil {
		return false, err
	}
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove file: %w", err)
	}
	return true, nil
}

// Clean deletes the data directory and every arrangement in it. It reports
// false if the directory did not exist.
func (s *Store) Clean() (bool, error) {
	return RemoveDir(s.Dir)
}

// RemoveDir deletes dir recursively, reporting false if it did not exist.
func RemoveDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return false, fmt.Errorf("failed to delete directory: %w", err)
	}
	return true, nil
}
