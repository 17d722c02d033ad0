package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	slotsFileName = "slots.json"
	lockDirSuffix = ".lock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStorage keeps every slot in one JSON object on disk.
// Writes hold a directory lock and replace the file atomically.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*FileStorage)(nil)

// NewFileStorage creates a file store inside dir, creating dir if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, errors.New("file storage: state directory not configured")
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return nil, fmt.Errorf("file storage: create state directory: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, slotsFileName)}, nil
}

// Path returns the location of the slots file.
func (fs *FileStorage) Path() string {
	return fs.path
}

// Get returns the value stored under key.
func (fs *FileStorage) Get(key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	slots, err := fs.readAll()
	if err != nil {
		return "", false, err
	}
	v, ok := slots[key]
	return v, ok, nil
}

// Set replaces the value stored under key, preserving other slots.
func (fs *FileStorage) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return WithLock(fs.path+lockDirSuffix, func() error {
		slots, err := fs.readAll()
		if err != nil {
			// An unreadable document is replaced rather than blocking writes forever.
			slots = make(map[string]string)
		}
		slots[key] = value
		return fs.writeAll(slots)
	})
}

// Close is a no-op.
func (fs *FileStorage) Close() error {
	return nil
}

func (fs *FileStorage) readAll() (map[string]string, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("file storage: read %s: %w", fs.path, err)
	}
	slots := make(map[string]string)
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("file storage: parse %s: %w", fs.path, err)
	}
	return slots, nil
}

func (fs *FileStorage) writeAll(slots map[string]string) error {
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("file storage: encode slots: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(fs.path), slotsFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("file storage: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("file storage: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("file storage: close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, FileModeFile); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("file storage: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, fs.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("file storage: replace %s: %w", fs.path, err)
	}
	return nil
}
