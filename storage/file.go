package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FileStore keeps all keys in one JSON document on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore makes sure the parent directory of path exists.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("storage: file store needs a path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("storage: creating data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", f.path, err)
	}
	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("storage: parsing %s: %w", f.path, err)
	}
	for k, v := range raw {
		// Accept both 120 and "120".
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			s = string(v)
		}
		values[k] = s
	}
	return values, nil
}

func (f *FileStore) Get(key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return 0, err
	}
	raw, ok := values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return parseValue(key, raw)
}

// Set rewrites the document through a temp file and rename so a crash
// never leaves a half-written file behind.
func (f *FileStore) Set(key string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		// A corrupt document is replaced rather than blocking every write.
		values = map[string]string{}
	}
	values[key] = strconv.Itoa(value)

	out := make(map[string]json.Number, len(values))
	for k, v := range values {
		out[k] = json.Number(v)
		if _, err := strconv.Atoi(v); err != nil {
			delete(out, k)
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encoding: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".snake-*.json")
	if err != nil {
		return fmt.Errorf("storage: creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: replacing %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
