package workspace

import "testing"

func TestSyncReplacesFolderSet(t *testing.T) {
	r := NewRegistry()
	r.Sync([]Folder{{URI: "file:///ws/a", Name: "a"}, {URI: "file:///ws/b", Name: "b"}})

	if _, ok := r.Find("file:///ws/a"); !ok {
		t.Fatalf("folder a not found after sync")
	}

	r.Sync([]Folder{{URI: "file:///ws/b", Name: "b"}})
	if _, ok := r.Find("file:///ws/a"); ok {
		t.Fatalf("folder a still present after replacement sync")
	}
	if f, ok := r.Find("file:///ws/b"); !ok || f.Name != "b" {
		t.Fatalf("folder b missing after replacement sync")
	}
}

func TestSyncSkipsBlankURIs(t *testing.T) {
	r := NewRegistry()
	r.Sync([]Folder{{URI: "  ", Name: "ghost"}})
	if got := r.All(); len(got) != 0 {
		t.Fatalf("All() = %v, want empty", got)
	}
}

func TestAllIsSortedByURI(t *testing.T) {
	r := NewRegistry()
	r.Sync([]Folder{{URI: "file:///ws/b"}, {URI: "file:///ws/a"}})
	all := r.All()
	if len(all) != 2 || all[0].URI != "file:///ws/a" || all[1].URI != "file:///ws/b" {
		t.Fatalf("All() = %v", all)
	}
}
