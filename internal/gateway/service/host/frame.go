package host

// Frame is one JSON message pushed to the editor over the host channel.
type Frame struct {
	Type           string     `json:"type"`
	PromptID       string     `json:"promptId,omitempty"`
	Message        string     `json:"message,omitempty"`
	Options        []string   `json:"options,omitempty"`
	Items          []PickItem `json:"items,omitempty"`
	FolderURI      string     `json:"folderUri,omitempty"`
	ProjectKey     string     `json:"projectKey,omitempty"`
	ConnectionID   string     `json:"connectionId,omitempty"`
	ConnectionKind string     `json:"connectionKind,omitempty"`
	Code           string     `json:"code,omitempty"`
}

// PickItem is one entry of a quick-pick list shown by the editor.
type PickItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind,omitempty"`
}

const (
	FrameShowPrompt        = "show_prompt"
	FrameShowPick          = "show_pick"
	FrameBindingSaved      = "binding_saved"
	FrameOpenBindingEditor = "open_binding_editor"
)
