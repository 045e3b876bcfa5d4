package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

// ErrStoreNotFound is returned by Load when the store file does not exist.
// It matches fs.ErrNotExist.
var ErrStoreNotFound = fmt.Errorf("store not found: %w", fs.ErrNotExist)

// Storage handles persistence of the course store and its side file.
type Storage struct {
	storePath        string
	descriptionsPath string
}

// New creates a Storage for the given store file. An empty descriptionsPath
// disables the derived-descriptions side file.
func New(storePath, descriptionsPath string) (*Storage, error) {
	var err error
	if storePath, err = ExpandHome(storePath); err != nil {
		return nil, err
	}
	if descriptionsPath, err = ExpandHome(descriptionsPath); err != nil {
		return nil, err
	}
	if storePath == "" {
		return nil, errors.New("store path is empty")
	}

	return &Storage{
		storePath:        storePath,
		descriptionsPath: descriptionsPath,
	}, nil
}

// StorePath returns the store file path.
func (s *Storage) StorePath() string {
	return s.storePath
}

// DescriptionsPath returns the side file path, or "" when disabled.
func (s *Storage) DescriptionsPath() string {
	return s.descriptionsPath
}

// Load reads the whole store. A missing or malformed store is fatal for a
// pass, so nothing is returned that a caller could mutate.
func (s *Storage) Load() (*course.Catalog, error) {
	data, err := os.ReadFile(s.storePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, s.storePath)
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var cat course.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", s.storePath, err)
	}
	return &cat, nil
}

// Save validates the catalog and rewrites the store in full.
func (s *Storage) Save(cat *course.Catalog) error {
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("validating store: %w", err)
	}

	data, err := Encode(cat)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	if err := WriteAtomic(s.storePath, data); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}

// SaveDescriptions regenerates the side file mapping id to blurb for every
// record with a non-empty blurb, in store order. It is a no-op when the side
// file is disabled.
func (s *Storage) SaveDescriptions(cat *course.Catalog) error {
	if s.descriptionsPath == "" {
		return nil
	}

	data, err := EncodeDescriptions(cat)
	if err != nil {
		return fmt.Errorf("encoding descriptions: %w", err)
	}

	if err := WriteAtomic(s.descriptionsPath, data); err != nil {
		return fmt.Errorf("writing descriptions: %w", err)
	}
	return nil
}

// LoadDescriptions reads the side file back as an id to blurb map.
func (s *Storage) LoadDescriptions() (map[string][]string, error) {
	descriptions := make(map[string][]string)
	if s.descriptionsPath == "" {
		return descriptions, nil
	}

	data, err := os.ReadFile(s.descriptionsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return descriptions, nil
		}
		return nil, fmt.Errorf("reading descriptions: %w", err)
	}

	if err := json.Unmarshal(data, &descriptions); err != nil {
		return nil, fmt.Errorf("parsing descriptions: %w", err)
	}
	return descriptions, nil
}

// EncodeDescriptions renders the side file. Keys keep store order, which a
// Go map would lose.
func EncodeDescriptions(cat *course.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, c := range cat.Courses {
		blurb := c.Blurb()
		if len(blurb) == 0 {
			continue
		}
		key, err := compact(c.ID())
		if err != nil {
			return nil, err
		}
		value, err := compact(blurb)
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Encode renders v as 2-space indented JSON without HTML escaping, followed
// by a newline.
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compact(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteAtomic writes data to a temp file next to path and renames it into
// place, creating the parent directory if needed.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() // nolint:errcheck
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ExpandHome expands a leading "~/" to the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
