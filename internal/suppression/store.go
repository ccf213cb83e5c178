package suppression

import (
	"encoding/json"
	"strings"
	"sync"
)

// Persisted keys. Both survive process restarts through the backing store.
const (
	workspaceFlagKey = "doNotAskAboutAutoBindingForWorkspace"
	folderFlagKey    = "doNotAskAboutAutoBindingForFolder"
)

// KeyValue is the durable keyed persistence surface the flags live in.
type KeyValue interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// Store holds the "never ask again" opt-out flags: one boolean for the whole
// workspace and an append-only set of folder URIs. The mutex serializes the
// read-then-append on the folder set so overlapping suggestion checks cannot
// lose an entry.
type Store struct {
	mu sync.Mutex
	kv KeyValue
}

func NewStore(kv KeyValue) *Store {
	return &Store{kv: kv}
}

func (s *Store) IsWorkspaceSuppressed() bool {
	if s == nil || s.kv == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.kv.Get(workspaceFlagKey)
	return ok && value == "true"
}

func (s *Store) SuppressWorkspace() {
	if s == nil || s.kv == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv.Put(workspaceFlagKey, "true")
}

func (s *Store) IsFolderSuppressed(folderURI string) bool {
	if s == nil || s.kv == nil {
		return false
	}
	folderURI = strings.TrimSpace(folderURI)
	if folderURI == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, uri := range s.folderSetLocked() {
		if uri == folderURI {
			return true
		}
	}
	return false
}

func (s *Store) SuppressFolder(folderURI string) {
	if s == nil || s.kv == nil {
		return
	}
	folderURI = strings.TrimSpace(folderURI)
	if folderURI == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.folderSetLocked()
	for _, uri := range set {
		if uri == folderURI {
			return
		}
	}
	set = append(set, folderURI)
	b, err := json.Marshal(set)
	if err != nil {
		return
	}
	s.kv.Put(folderFlagKey, string(b))
}

func (s *Store) folderSetLocked() []string {
	raw, ok := s.kv.Get(folderFlagKey)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var set []string
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil
	}
	return set
}
