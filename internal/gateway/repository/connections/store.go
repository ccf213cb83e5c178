package connections

import (
	"encoding/json"
	"os"
	"sync"
)

// Store reads the configured SonarQube and SonarCloud connections from a
// settings document. The document is loaded once; a missing or malformed file
// behaves like an empty configuration.
type Store struct {
	path string

	loadOnce   sync.Once
	mu         sync.RWMutex
	sonarQube  []Connection
	sonarCloud []Connection
}

type fileDocument struct {
	SonarQube  []fileServerConnection `json:"sonarqube"`
	SonarCloud []fileCloudConnection  `json:"sonarcloud"`
}

type fileServerConnection struct {
	ConnectionID string `json:"connectionId"`
	ServerURL    string `json:"serverUrl"`
}

type fileCloudConnection struct {
	ConnectionID    string `json:"connectionId"`
	OrganizationKey string `json:"organizationKey"`
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewMemory returns a store pre-populated with the given connections; kinds
// are assigned from the list each connection arrives in. Used by tests and by
// embedders that manage configuration themselves.
func NewMemory(sonarQube, sonarCloud []Connection) *Store {
	s := &Store{}
	s.loadOnce.Do(func() {})
	for _, c := range sonarQube {
		c.Kind = KindSonarQube
		s.sonarQube = append(s.sonarQube, normalize(c))
	}
	for _, c := range sonarCloud {
		c.Kind = KindSonarCloud
		s.sonarCloud = append(s.sonarCloud, normalize(c))
	}
	return s
}

func (s *Store) ensureLoaded() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var doc fileDocument
		if err := json.Unmarshal(b, &doc); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range doc.SonarQube {
			s.sonarQube = append(s.sonarQube, normalize(Connection{
				ID:        row.ConnectionID,
				Kind:      KindSonarQube,
				ServerURL: row.ServerURL,
			}))
		}
		for _, row := range doc.SonarCloud {
			s.sonarCloud = append(s.sonarCloud, normalize(Connection{
				ID:              row.ConnectionID,
				Kind:            KindSonarCloud,
				OrganizationKey: row.OrganizationKey,
			}))
		}
	})
}

func (s *Store) SonarQube() []Connection {
	if s == nil {
		return nil
	}
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Connection, len(s.sonarQube))
	copy(out, s.sonarQube)
	return out
}

func (s *Store) SonarCloud() []Connection {
	if s == nil {
		return nil
	}
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Connection, len(s.sonarCloud))
	copy(out, s.sonarCloud)
	return out
}

func (s *Store) Count() int {
	if s == nil {
		return 0
	}
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sonarQube) + len(s.sonarCloud)
}

// ByID looks a connection up by its effective identifier across both kinds.
func (s *Store) ByID(id string) (Connection, bool) {
	if s == nil {
		return Connection{}, false
	}
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range [][]Connection{s.sonarQube, s.sonarCloud} {
		for _, c := range list {
			if c.EffectiveID() == id {
				return c, true
			}
		}
	}
	return Connection{}, false
}
