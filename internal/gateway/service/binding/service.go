package binding

import (
	"context"
	"fmt"
	"sync"

	"sonarassist/internal/gateway/repository/connections"
	"sonarassist/internal/gateway/service/connection"
	"sonarassist/internal/gateway/service/workspace"
)

// Suggestion is one candidate remote project a folder could bind to.
type Suggestion struct {
	SonarProjectKey string `json:"sonarProjectKey"`
	ConnectionID    string `json:"connectionId"`
}

// SuggestParams maps folder URIs to their candidate bindings.
type SuggestParams struct {
	Suggestions map[string][]Suggestion `json:"suggestions"`
}

const (
	configureBindingAction = "Configure Binding"
	chooseManuallyAction   = "Choose Manually"
	dontAskAgainAction     = "Don't Ask Again"
)

const unboundFoldersMessage = "There are folders in your workspace that are not bound to any SonarQube/SonarCloud projects. Do you want to configure binding?"

// Prompter shows a message with action buttons; "" means dismissed.
type Prompter interface {
	Show(ctx context.Context, message string, options ...string) (string, error)
}

// Folders resolves a URI to a currently open workspace folder.
type Folders interface {
	Find(uri string) (workspace.Folder, bool)
}

// Suppressions is the durable "never ask again" state.
type Suppressions interface {
	IsWorkspaceSuppressed() bool
	IsFolderSuppressed(folderURI string) bool
	SuppressWorkspace()
	SuppressFolder(folderURI string)
}

// Connections is the slice of the configuration store the engine needs.
type Connections interface {
	Count() int
	ByID(id string) (connections.Connection, bool)
}

// TargetResolver picks the connection a manual binding should use.
type TargetResolver interface {
	ResolveTargetConnection(ctx context.Context) (*connection.Target, error)
}

// Binder applies bindings. SaveBinding records a concrete folder-to-project
// binding; CreateOrEditBinding hands control to the editor's binding editor.
type Binder interface {
	SaveBinding(ctx context.Context, projectKey, connectionID string, folder workspace.Folder) error
	CreateOrEditBinding(ctx context.Context, connectionID string, kind connections.Kind) error
}

// Service is the binding-suggestion decision engine. The mutex serializes
// overlapping suggestion checks so suppression reads and appends cannot race.
type Service struct {
	mu sync.Mutex

	prompter     Prompter
	folders      Folders
	suppressions Suppressions
	connections  Connections
	resolver     TargetResolver
	binder       Binder
}

func NewService(prompter Prompter, folders Folders, suppressions Suppressions, conns Connections, resolver TargetResolver, binder Binder) *Service {
	return &Service{
		prompter:     prompter,
		folders:      folders,
		suppressions: suppressions,
		connections:  conns,
		resolver:     resolver,
		binder:       binder,
	}
}

// CheckConditionsAndAttemptAutobinding routes every folder in params to at
// most one prompt flow. Every outcome is terminal for this invocation; a
// dismissed prompt changes nothing and is never an error.
func (s *Service) CheckConditionsAndAttemptAutobinding(ctx context.Context, params SuggestParams) error {
	if s == nil {
		return fmt.Errorf("binding service is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connections.Count() == 0 || s.suppressions.IsWorkspaceSuppressed() {
		return nil
	}

	if len(params.Suggestions) > 1 {
		return s.askAboutAllFolders(ctx)
	}

	for folderURI, suggestions := range params.Suggestions {
		folder, ok := s.folders.Find(folderURI)
		if !ok || s.suppressions.IsFolderSuppressed(folderURI) {
			continue
		}
		var err error
		if len(suggestions) == 1 {
			err = s.promptToBindSingleOption(ctx, folder, suggestions[0])
		} else {
			err = s.promptToBindManually(ctx, folder)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// askAboutAllFolders runs the one workspace-wide confirmation that replaces
// per-folder prompts when two or more folders carry suggestions.
func (s *Service) askAboutAllFolders(ctx context.Context) error {
	selection, err := s.prompter.Show(ctx, unboundFoldersMessage, configureBindingAction, dontAskAgainAction)
	if err != nil {
		return err
	}
	switch selection {
	case dontAskAgainAction:
		s.suppressions.SuppressWorkspace()
	case configureBindingAction:
		return s.bindManually(ctx)
	}
	return nil
}

func (s *Service) promptToBindSingleOption(ctx context.Context, folder workspace.Folder, suggestion Suggestion) error {
	selection, err := s.prompter.Show(ctx, s.singleOptionMessage(folder, suggestion),
		configureBindingAction, chooseManuallyAction, dontAskAgainAction)
	if err != nil {
		return err
	}
	switch selection {
	case configureBindingAction:
		return s.binder.SaveBinding(ctx, suggestion.SonarProjectKey, suggestion.ConnectionID, folder)
	case chooseManuallyAction:
		return s.bindManually(ctx)
	case dontAskAgainAction:
		s.suppressions.SuppressFolder(folder.URI)
	}
	return nil
}

func (s *Service) promptToBindManually(ctx context.Context, folder workspace.Folder) error {
	selection, err := s.prompter.Show(ctx, unboundFoldersMessage, configureBindingAction, dontAskAgainAction)
	if err != nil {
		return err
	}
	switch selection {
	case configureBindingAction:
		return s.bindManually(ctx)
	case dontAskAgainAction:
		s.suppressions.SuppressFolder(folder.URI)
	}
	return nil
}

// bindManually resolves a target connection and opens the binding editor.
// A dismissed connection choice aborts the attempt without touching state.
func (s *Service) bindManually(ctx context.Context) error {
	target, err := s.resolver.ResolveTargetConnection(ctx)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	return s.binder.CreateOrEditBinding(ctx, target.ConnectionID, target.Kind)
}

func (s *Service) singleOptionMessage(folder workspace.Folder, suggestion Suggestion) string {
	origin := fmt.Sprintf("SonarQube server '%s'", suggestion.ConnectionID)
	if conn, ok := s.connections.ByID(suggestion.ConnectionID); ok && conn.Kind == connections.KindSonarCloud {
		origin = fmt.Sprintf("SonarCloud organization '%s'", suggestion.ConnectionID)
	}
	return fmt.Sprintf("Do you want to bind folder '%s' to project '%s' of %s?",
		folder.Name, suggestion.SonarProjectKey, origin)
}
