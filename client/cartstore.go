package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// FileCartStore keeps the cart in a local JSON file, the way the storefront
// kept it in browser storage. Concurrent writers from separate processes are
// last-write-wins on the shared file.
type FileCartStore struct {
	Path string
}

func NewFileCartStore(path string) *FileCartStore {
	return &FileCartStore{Path: path}
}

func (s *FileCartStore) Load() (map[uint]CartItem, error) {
	buf, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[uint]CartItem), nil
		}
		return nil, err
	}

	var items map[uint]CartItem
	if err := json.Unmarshal(buf, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make(map[uint]CartItem)
	}
	return items, nil
}

func (s *FileCartStore) Save(items map[uint]CartItem) error {
	buf, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, buf, 0o644)
}
