package uri

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ToPath converts a file:// URI into a filesystem path.
func ToPath(fileURI string) (string, error) {
	raw := strings.TrimSpace(fileURI)
	if raw == "" {
		return "", fmt.Errorf("uri is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid uri %q: %w", raw, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported uri scheme %q", u.Scheme)
	}
	path := u.Path
	if path == "" {
		return "", fmt.Errorf("uri %q has no path", raw)
	}
	return filepath.FromSlash(path), nil
}

// FromPath converts a filesystem path into a file:// URI string.
func FromPath(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	return u.String()
}
