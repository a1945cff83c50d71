package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-recall/internal/game"
	"github.com/pixil98/go-recall/internal/storage"
)

type StorageConfig struct {
	Worlds AssetConfig[*game.World] `json:"worlds"`
}

func (c *StorageConfig) buildWorlds() ([]*game.World, error) {
	st, err := c.Worlds.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating world store: %w", err)
	}

	worlds := game.WorldsFromStore(st)
	if len(worlds) == 0 {
		return nil, fmt.Errorf("no worlds found in %s", c.Worlds.Path)
	}
	return worlds, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Worlds.Validate("worlds"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
