// Package storage keeps input recordings in the per-user save directory.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/quasilyte/gdata"
)

const (
	indexKey     = "replays"
	replayPrefix = "replay_"
)

// ErrNotFound is returned by Load for an unknown name.
var ErrNotFound = errors.New("replay not found")

// ItemStore is the part of gdata.Manager the store uses.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// ReplayStore saves encoded replays under their name and keeps a sorted index.
type ReplayStore struct {
	items  ItemStore
	logger *slog.Logger
}

// Open opens the gdata save directory for appName.
func Open(appName string, logger *slog.Logger) (*ReplayStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data for %s: %w", appName, err)
	}
	return New(m, logger), nil
}

// New wraps an existing item store.
func New(items ItemStore, logger *slog.Logger) *ReplayStore {
	return &ReplayStore{items: items, logger: logger}
}

// Save stores data under name and records name in the index.
func (s *ReplayStore) Save(name string, data []byte) error {
	if name == "" {
		return errors.New("replay name is empty")
	}
	if err := s.items.SaveItem(replayPrefix+name, data); err != nil {
		return fmt.Errorf("save replay %s: %w", name, err)
	}

	names, err := s.List()
	if err != nil {
		return err
	}
	i := sort.SearchStrings(names, name)
	if i < len(names) && names[i] == name {
		return nil
	}
	names = append(names, "")
	copy(names[i+1:], names[i:])
	names[i] = name

	if err := s.saveIndex(names); err != nil {
		return err
	}
	s.logger.Info("replay saved", "name", name, "bytes", len(data))
	return nil
}

// Load returns the stored replay, or ErrNotFound.
func (s *ReplayStore) Load(name string) ([]byte, error) {
	data, err := s.items.LoadItem(replayPrefix + name)
	if err != nil {
		return nil, fmt.Errorf("load replay %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, nil
}

// List returns stored replay names in sorted order.
func (s *ReplayStore) List() ([]string, error) {
	data, err := s.items.LoadItem(indexKey)
	if err != nil {
		return nil, fmt.Errorf("load replay index: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parse replay index: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *ReplayStore) saveIndex(names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode replay index: %w", err)
	}
	if err := s.items.SaveItem(indexKey, data); err != nil {
		return fmt.Errorf("save replay index: %w", err)
	}
	return nil
}
