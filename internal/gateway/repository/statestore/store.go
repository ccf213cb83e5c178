package statestore

import (
	"database/sql"
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store is a durable keyed persistence surface. Values are opaque strings;
// higher layers decide their encoding. The backend is either a JSON file or
// postgres, selected at construction time.
type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	entries  map[string]string

	schemaOnce sync.Once
	schemaErr  error

	readCache *lru.Cache[string, string]
}

func New(path string) *Store {
	return &Store{
		path:    path,
		entries: make(map[string]string),
	}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, string](1024)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{
		db:        db,
		readCache: cache,
	}, nil
}

// NewFromEnv returns a postgres-backed store when STATE_STORE_PG_DSN is set,
// otherwise a file-backed one at path.
func NewFromEnv(path string) *Store {
	dsn := strings.TrimSpace(os.Getenv("STATE_STORE_PG_DSN"))
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if s.db != nil {
		return s.getDB(key)
	}
	return s.getFile(key)
}

func (s *Store) Put(key, value string) {
	if s == nil {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if s.db != nil {
		s.putDB(key, value)
		return
	}
	s.putFile(key, value)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
