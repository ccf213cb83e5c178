package suppression

import (
	"path/filepath"
	"testing"

	"sonarassist/internal/gateway/repository/statestore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(statestore.New(filepath.Join(t.TempDir(), "state.json")))
}

func TestWorkspaceFlagDefaultsFalse(t *testing.T) {
	s := newTestStore(t)
	if s.IsWorkspaceSuppressed() {
		t.Fatalf("IsWorkspaceSuppressed() = true on a fresh store")
	}
}

func TestSuppressWorkspaceIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	s.SuppressWorkspace()
	s.SuppressWorkspace()
	if !s.IsWorkspaceSuppressed() {
		t.Fatalf("IsWorkspaceSuppressed() = false after SuppressWorkspace()")
	}
}

func TestSuppressFolderAppendsOnce(t *testing.T) {
	s := newTestStore(t)
	const folder = "file:///ws/a"

	if s.IsFolderSuppressed(folder) {
		t.Fatalf("IsFolderSuppressed() = true on a fresh store")
	}
	s.SuppressFolder(folder)
	s.SuppressFolder(folder)
	if !s.IsFolderSuppressed(folder) {
		t.Fatalf("IsFolderSuppressed() = false after SuppressFolder()")
	}
	if s.IsFolderSuppressed("file:///ws/b") {
		t.Fatalf("unrelated folder reported suppressed")
	}
}

func TestFolderSetGrowsMonotonically(t *testing.T) {
	s := newTestStore(t)
	s.SuppressFolder("file:///ws/a")
	s.SuppressFolder("file:///ws/b")
	for _, uri := range []string{"file:///ws/a", "file:///ws/b"} {
		if !s.IsFolderSuppressed(uri) {
			t.Fatalf("IsFolderSuppressed(%q) = false", uri)
		}
	}
}

func TestFlagsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first := NewStore(statestore.New(path))
	first.SuppressWorkspace()
	first.SuppressFolder("file:///ws/a")

	reopened := NewStore(statestore.New(path))
	if !reopened.IsWorkspaceSuppressed() {
		t.Fatalf("workspace flag lost across reopen")
	}
	if !reopened.IsFolderSuppressed("file:///ws/a") {
		t.Fatalf("folder flag lost across reopen")
	}
}
