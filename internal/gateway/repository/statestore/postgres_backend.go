package statestore

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS state_entries (
  entry_key TEXT PRIMARY KEY,
  entry_value TEXT NOT NULL DEFAULT ''
);
`)
	})
	return s.schemaErr
}

func (s *Store) getDB(key string) (string, bool) {
	if err := s.ensureSchema(); err != nil {
		return "", false
	}
	if value, ok := s.readCache.Get(key); ok {
		return value, true
	}
	row := s.db.QueryRow(`SELECT entry_value FROM state_entries WHERE entry_key = $1`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		return "", false
	}
	s.readCache.Add(key, value)
	return value, true
}

func (s *Store) putDB(key, value string) {
	if err := s.ensureSchema(); err != nil {
		return
	}
	_, err := s.db.Exec(`
INSERT INTO state_entries (entry_key, entry_value)
VALUES ($1, $2)
ON CONFLICT (entry_key)
DO UPDATE SET entry_value = EXCLUDED.entry_value`,
		key, value)
	if err != nil {
		return
	}
	s.readCache.Add(key, value)
}
