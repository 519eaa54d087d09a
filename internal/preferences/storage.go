package preferences

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"

	"github.com/BurntSushi/toml"
)

// Storage is a durable string key/value store.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes value under key before returning.
	Set(key, value string) error
}

// batchSetter is implemented by storages that can write several keys at once.
type batchSetter interface {
	SetMany(values map[string]string) error
}

// MemoryStorage keeps values in process memory.
type MemoryStorage struct {
	values map[string]string
	writes int
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.values[key] = value
	m.writes++
	return nil
}

// Writes reports how many Set calls have been made.
func (m *MemoryStorage) Writes() int {
	return m.writes
}

// FileStorage stores values in a TOML document, one string per key.
// Each write replaces the file atomically.
type FileStorage struct {
	Path string
}

// NewFileStorage returns a FileStorage writing to path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (f *FileStorage) Get(key string) (string, bool, error) {
	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (f *FileStorage) Set(key, value string) error {
	return f.SetMany(map[string]string{key: value})
}

// SetMany writes all values in a single file replacement. A document that
// cannot be decoded is replaced rather than merged.
func (f *FileStorage) SetMany(values map[string]string) error {
	current, err := f.read()
	if err != nil {
		current = make(map[string]string)
	}
	for k, v := range values {
		current[k] = v
	}
	return f.write(current)
}

func (f *FileStorage) read() (map[string]string, error) {
	values := make(map[string]string)
	if _, err := os.Stat(f.Path); os.IsNotExist(err) {
		return values, nil
	}
	if _, err := toml.DecodeFile(f.Path, &values); err != nil {
		return nil, fmt.Errorf("decoding %s: %v: %w", f.Path, err, kerrors.ErrStorageRead)
	}
	return values, nil
}

func (f *FileStorage) write(values map[string]string) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating %s: %v: %w", dir, err, kerrors.ErrStorageWrite)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp file: %v: %w", err, kerrors.ErrStorageWrite)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(values); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding preferences: %v: %w", err, kerrors.ErrStorageWrite)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing preferences: %v: %w", err, kerrors.ErrStorageWrite)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing preferences: %v: %w", err, kerrors.ErrStorageWrite)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("replacing %s: %v: %w", f.Path, err, kerrors.ErrStorageWrite)
	}
	return nil
}
