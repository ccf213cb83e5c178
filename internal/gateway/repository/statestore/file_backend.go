package statestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows map[string]string
		if err := json.Unmarshal(b, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for key, value := range rows {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			s.entries[key] = value
		}
	})
}

func (s *Store) saveFile() {
	s.mu.RLock()
	rows := make(map[string]string, len(s.entries))
	for key, value := range s.entries {
		rows[key] = value
	}
	s.mu.RUnlock()

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, b, 0o644)
}

func (s *Store) getFile(key string) (string, bool) {
	s.ensureLoadedFile()
	s.mu.RLock()
	value, ok := s.entries[key]
	s.mu.RUnlock()
	return value, ok
}

func (s *Store) putFile(key, value string) {
	s.ensureLoadedFile()
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	s.saveFile()
}
