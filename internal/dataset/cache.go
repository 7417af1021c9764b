package dataset

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Cache is the single local copy of the source file. It is never refreshed
// once written.
type Cache struct {
	dir  string
	name string
}

func NewCache(dir, name string) *Cache {
	return &Cache{dir: dir, name: name}
}

func (c *Cache) Path() string {
	return filepath.Join(c.dir, c.name)
}

func (c *Cache) Exists() (bool, error) {
	info, err := os.Stat(c.Path())
	switch {
	case err == nil:
		if info.IsDir() {
			return false, errors.Errorf("cache path %s is a directory", c.Path())
		}
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "checking cache file")
	}
}

// Fill creates the cache directory if needed and lets write produce the file
// contents. The bytes go to a temporary file that only replaces the cache
// path once write has returned nil, so a failed fill leaves nothing behind.
func (c *Cache) Fill(write func(io.Writer) error) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return errors.Wrap(err, "creating cache directory")
	}
	tmp, err := os.CreateTemp(c.dir, c.name+".*.part")
	if err != nil {
		return errors.Wrap(err, "creating temporary cache file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temporary cache file")
	}
	if err := os.Rename(tmp.Name(), c.Path()); err != nil {
		return errors.Wrap(err, "moving cache file into place")
	}
	return nil
}
