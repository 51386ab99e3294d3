package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
)

// NetworkStore manages persistence of a network snapshot to a JSON file.
type NetworkStore struct {
	mu   sync.Mutex
	path string
}

// NewNetworkStore creates a new network store.
func NewNetworkStore(path string) *NetworkStore {
	return &NetworkStore{path: path}
}

// Save persists the snapshot to disk.
func (s *NetworkStore) Save(snapshot *NetworkSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snapshot.Version = SnapshotVersion

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *NetworkStore) Load() (*NetworkSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot := &NetworkSnapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Clear removes the snapshot file.
func (s *NetworkStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Saver binds a network to a store. It satisfies the configuration
// engine's persistence hook: every call snapshots the network and writes
// it out.
type Saver struct {
	network *model.Network
	store   *NetworkStore
}

// NewSaver creates a saver for the network backed by the store.
func NewSaver(network *model.Network, store *NetworkStore) *Saver {
	return &Saver{network: network, store: store}
}

// Save snapshots the network and persists it.
func (s *Saver) Save() error {
	return s.store.Save(Snapshot(s.network))
}
