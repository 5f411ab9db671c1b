package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"wikitext/internal/ast"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// Digest - фиксированный 256-битный хеш содержимого документа.
type Digest [32]byte

// DigestOf возвращает SHA-256 ключ кэша для исходного текста.
func DigestOf(input string) Digest {
	return sha256.Sum256([]byte(input))
}

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// DiskCache хранит нормализованные деревья по хешу исходника на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the on-disk envelope: schema for safe invalidation plus
// the JSON-encoded normalized tree.
type cachePayload struct {
	Schema uint16
	Input  Digest
	Tree   []byte
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt открывает кэш в явно заданном каталоге (тесты, --cache-dir).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	// Для удобства читаемости/очистки — подкаталог "trees".
	return filepath.Join(c.dir, "trees", key.String()+".mp")
}

// Put serializes and writes a normalized tree to the disk cache.
func (c *DiskCache) Put(key Digest, tree ast.Element) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	payload := cachePayload{Schema: cacheSchemaVersion, Input: key, Tree: data}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	// После успешного Rename файла уже нет, ошибка удаления не важна.
	defer func() { _ = os.Remove(f.Name()) }()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached tree. Отсутствие записи и несовпадение схемы — это
// промах, а не ошибка.
func (c *DiskCache) Get(key Digest) (ast.Element, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion || payload.Input != key {
		return nil, false, nil
	}
	tree, err := ast.UnmarshalElement(payload.Tree)
	if err != nil {
		return nil, false, err
	}
	return tree, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим целиком
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// ParseFileCached is ParseFile backed by the disk cache: a hit skips the
// grammar and the passes entirely. Ошибки разбора не кэшируются.
func ParseFileCached(cache *DiskCache, path string) (ast.Element, bool, error) {
	input, err := Load(path)
	if err != nil {
		return nil, false, err
	}
	key := DigestOf(input)

	if tree, ok, err := cache.Get(key); err != nil {
		return nil, false, err
	} else if ok {
		return tree, true, nil
	}

	tree, err := Parse(input)
	if err != nil {
		return nil, false, err
	}
	if err := cache.Put(key, tree); err != nil {
		return nil, false, err
	}
	return tree, false, nil
}
