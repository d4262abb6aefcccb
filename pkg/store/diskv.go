package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/meditary/pkg/errs"
)

const tempDirName = ".tmp"

// Load creates a KeyValue backed by diskv using the provided config.
func Load(cfg Config) (KeyValue, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.BasePath())
}

// Open creates a diskv-backed KeyValue rooted at basePath.
func Open(basePath string) (KeyValue, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(filepath.Join(basePath, tempDirName), 0o755); err != nil {
		return nil, errs.Storage("open", basePath, err)
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			TempDir:      filepath.Join(basePath, tempDirName),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func flatTransform(string) []string { return []string{} }

func (p *persistence) Get(_ context.Context, key string) (string, bool, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errs.Storage("read", key, err)
	}
	return string(val), true, nil
}

// Set writes through diskv's temp dir, so the key is replaced by a rename.
func (p *persistence) Set(_ context.Context, key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return errs.Storage("write", key, err)
	}
	return nil
}

func (p *persistence) Erase(_ context.Context, key string) error {
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.Storage("erase", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, ".") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
