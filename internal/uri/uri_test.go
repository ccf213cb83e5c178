package uri

import "testing"

func TestToPath(t *testing.T) {
	got, err := ToPath("file:///home/user/project")
	if err != nil {
		t.Fatalf("ToPath() error = %v", err)
	}
	if got != "/home/user/project" {
		t.Fatalf("ToPath() = %q, want %q", got, "/home/user/project")
	}
}

func TestToPathEscapedCharacters(t *testing.T) {
	got, err := ToPath("file:///home/user/my%20project")
	if err != nil {
		t.Fatalf("ToPath() error = %v", err)
	}
	if got != "/home/user/my project" {
		t.Fatalf("ToPath() = %q, want %q", got, "/home/user/my project")
	}
}

func TestToPathRejectsNonFileScheme(t *testing.T) {
	if _, err := ToPath("https://example.com/x"); err == nil {
		t.Fatalf("ToPath() expected error for non-file scheme")
	}
}

func TestToPathRejectsEmpty(t *testing.T) {
	if _, err := ToPath("  "); err == nil {
		t.Fatalf("ToPath() expected error for blank uri")
	}
}

func TestFromPathRoundTrip(t *testing.T) {
	u := FromPath("/ws/folder a")
	if u != "file:///ws/folder%20a" {
		t.Fatalf("FromPath() = %q", u)
	}
	back, err := ToPath(u)
	if err != nil {
		t.Fatalf("ToPath() error = %v", err)
	}
	if back != "/ws/folder a" {
		t.Fatalf("round trip = %q", back)
	}
}
