package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// File names used by the file driver inside its data directory.
const (
	SettingsFileName  = "settings.json"
	ItemsFileName     = "items.json"
	PackagingFileName = "packaging.json"
)

// jsonFile reads and atomically replaces one JSON document.
type jsonFile[T any] struct {
	path string
}

// read returns the zero value and false when the file does not exist yet.
func (f jsonFile[T]) read() (T, bool, error) {
	var v T
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return v, false, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return v, true, nil
}

// write goes through a temp file in the same directory so readers never see a partial document.
func (f jsonFile[T]) write(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", f.path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// fileCatalog keeps an ordered list of records in one JSON array.
type fileCatalog[T any] struct {
	mu     sync.Mutex
	file   jsonFile[[]T]
	idOf   func(T) string
	nameOf func(T) string
}

func (c *fileCatalog[T]) list() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, _, err := c.file.read()
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *fileCatalog[T]) get(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, _, err := c.file.read()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if c.idOf(records[i]) == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (c *fileCatalog[T]) create(record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, _, err := c.file.read()
	if err != nil {
		return err
	}
	if c.nameTaken(records, record) {
		return ErrDuplicateName
	}
	return c.file.write(append(records, record))
}

func (c *fileCatalog[T]) update(record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, _, err := c.file.read()
	if err != nil {
		return err
	}
	if c.nameTaken(records, record) {
		return ErrDuplicateName
	}
	for i := range records {
		if c.idOf(records[i]) == c.idOf(record) {
			records[i] = record
			return c.file.write(records)
		}
	}
	return ErrNotFound
}

func (c *fileCatalog[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, _, err := c.file.read()
	if err != nil {
		return err
	}
	for i := range records {
		if c.idOf(records[i]) == id {
			records = append(records[:i], records[i+1:]...)
			return c.file.write(records)
		}
	}
	return ErrNotFound
}

func (c *fileCatalog[T]) nameTaken(records []T, record T) bool {
	key := model.NameKey(c.nameOf(record))
	for _, r := range records {
		if c.idOf(r) != c.idOf(record) && model.NameKey(c.nameOf(r)) == key {
			return true
		}
	}
	return false
}

// FileStorage persists settings, items and packaging as JSON documents in one directory.
type FileStorage struct {
	dir string

	settingsMu sync.Mutex
	settings   jsonFile[*model.OriginSettings]
	items      *fileCatalog[model.Item]
	packaging  *fileCatalog[model.Packaging]
}

// NewFileStorage creates dir if needed and returns a storage rooted there.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStorage{
		dir:      dir,
		settings: jsonFile[*model.OriginSettings]{path: filepath.Join(dir, SettingsFileName)},
		items: &fileCatalog[model.Item]{
			file:   jsonFile[[]model.Item]{path: filepath.Join(dir, ItemsFileName)},
			idOf:   func(i model.Item) string { return i.ID },
			nameOf: func(i model.Item) string { return i.Name },
		},
		packaging: &fileCatalog[model.Packaging]{
			file:   jsonFile[[]model.Packaging]{path: filepath.Join(dir, PackagingFileName)},
			idOf:   func(p model.Packaging) string { return p.ID },
			nameOf: func(p model.Packaging) string { return p.Name },
		},
	}, nil
}

// Stores exposes the file storage through the repository interfaces.
func (s *FileStorage) Stores() Stores {
	return Stores{
		Settings:  fileSettingsStore{s},
		Items:     fileItemStore{s.items},
		Packaging: filePackagingStore{s.packaging},
		Health:    s,
	}
}

// HealthCheck verifies the data directory is still a writable directory.
func (s *FileStorage) HealthCheck(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	probe, err := os.CreateTemp(s.dir, ".healthcheck.*")
	if err != nil {
		return err
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}

type fileSettingsStore struct{ s *FileStorage }

func (f fileSettingsStore) Get(_ context.Context) (*model.OriginSettings, error) {
	f.s.settingsMu.Lock()
	defer f.s.settingsMu.Unlock()
	settings, _, err := f.s.settings.read()
	return settings, err
}

func (f fileSettingsStore) Save(_ context.Context, settings model.OriginSettings) error {
	f.s.settingsMu.Lock()
	defer f.s.settingsMu.Unlock()
	return f.s.settings.write(&settings)
}

type fileItemStore struct{ c *fileCatalog[model.Item] }

func (f fileItemStore) List(_ context.Context) ([]model.Item, error) { return f.c.list() }
func (f fileItemStore) Get(_ context.Context, id string) (*model.Item, error) {
	return f.c.get(id)
}
func (f fileItemStore) Create(_ context.Context, item model.Item) error { return f.c.create(item) }
func (f fileItemStore) Update(_ context.Context, item model.Item) error { return f.c.update(item) }
func (f fileItemStore) Delete(_ context.Context, id string) error       { return f.c.remove(id) }

type filePackagingStore struct{ c *fileCatalog[model.Packaging] }

func (f filePackagingStore) List(_ context.Context) ([]model.Packaging, error) { return f.c.list() }
func (f filePackagingStore) Get(_ context.Context, id string) (*model.Packaging, error) {
	return f.c.get(id)
}
func (f filePackagingStore) Create(_ context.Context, p model.Packaging) error { return f.c.create(p) }
func (f filePackagingStore) Update(_ context.Context, p model.Packaging) error { return f.c.update(p) }
func (f filePackagingStore) Delete(_ context.Context, id string) error         { return f.c.remove(id) }
