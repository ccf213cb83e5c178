package workspace

import (
	"sort"
	"strings"
	"sync"
)

// Folder is one workspace folder currently open in the editor. The gateway
// never creates or removes folders; it mirrors what the host reports.
type Folder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// Registry tracks the folders the editor has open, keyed by canonical URI.
type Registry struct {
	mu    sync.RWMutex
	byURI map[string]Folder
}

func NewRegistry() *Registry {
	return &Registry{byURI: make(map[string]Folder)}
}

// Sync replaces the known folder set with the host's current view.
func (r *Registry) Sync(folders []Folder) {
	if r == nil {
		return
	}
	next := make(map[string]Folder, len(folders))
	for _, f := range folders {
		uri := strings.TrimSpace(f.URI)
		if uri == "" {
			continue
		}
		f.URI = uri
		f.Name = strings.TrimSpace(f.Name)
		next[uri] = f
	}
	r.mu.Lock()
	r.byURI = next
	r.mu.Unlock()
}

func (r *Registry) Find(uri string) (Folder, bool) {
	if r == nil {
		return Folder{}, false
	}
	uri = strings.TrimSpace(uri)
	r.mu.RLock()
	f, ok := r.byURI[uri]
	r.mu.RUnlock()
	return f, ok
}

func (r *Registry) All() []Folder {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]Folder, 0, len(r.byURI))
	for _, f := range r.byURI {
		out = append(out, f)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].URI < out[j].URI })
	return out
}
