package binding

import (
	"context"
	"encoding/json"
	"fmt"

	"sonarassist/internal/gateway/repository/connections"
	"sonarassist/internal/gateway/service/host"
	"sonarassist/internal/gateway/service/workspace"
)

// KeyValue is the durable persistence surface binding records are written to.
type KeyValue interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// Notifier pushes binding events to the connected editor.
type Notifier interface {
	Broadcast(host.Frame)
}

type bindingRecord struct {
	ProjectKey   string `json:"projectKey"`
	ConnectionID string `json:"connectionId"`
}

// HostBinder is the default Binder: it records bindings in the state store
// and tells the editor what happened over the host channel.
type HostBinder struct {
	state    KeyValue
	notifier Notifier
}

func NewHostBinder(state KeyValue, notifier Notifier) *HostBinder {
	return &HostBinder{state: state, notifier: notifier}
}

func (b *HostBinder) SaveBinding(_ context.Context, projectKey, connectionID string, folder workspace.Folder) error {
	if b == nil || b.state == nil {
		return fmt.Errorf("binder is not configured")
	}
	record, err := json.Marshal(bindingRecord{ProjectKey: projectKey, ConnectionID: connectionID})
	if err != nil {
		return err
	}
	b.state.Put(bindingKey(folder.URI), string(record))
	if b.notifier != nil {
		b.notifier.Broadcast(host.Frame{
			Type:         host.FrameBindingSaved,
			FolderURI:    folder.URI,
			ProjectKey:   projectKey,
			ConnectionID: connectionID,
		})
	}
	return nil
}

func (b *HostBinder) CreateOrEditBinding(_ context.Context, connectionID string, kind connections.Kind) error {
	if b == nil {
		return fmt.Errorf("binder is not configured")
	}
	if b.notifier != nil {
		b.notifier.Broadcast(host.Frame{
			Type:           host.FrameOpenBindingEditor,
			ConnectionID:   connectionID,
			ConnectionKind: string(kind),
		})
	}
	return nil
}

// SavedBinding reads back the binding recorded for a folder, if any.
func (b *HostBinder) SavedBinding(folderURI string) (projectKey, connectionID string, ok bool) {
	if b == nil || b.state == nil {
		return "", "", false
	}
	raw, found := b.state.Get(bindingKey(folderURI))
	if !found {
		return "", "", false
	}
	var record bindingRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return "", "", false
	}
	return record.ProjectKey, record.ConnectionID, true
}

func bindingKey(folderURI string) string {
	return "binding:" + folderURI
}
