package connection

import (
	"context"

	"sonarassist/internal/gateway/repository/connections"
	"sonarassist/internal/gateway/service/host"
)

// Target is the connection chosen for a manual binding. It is recomputed on
// every manual-bind attempt, never cached.
type Target struct {
	ConnectionID string
	Label        string
	Kind         connections.Kind
}

// Reader lists the configured connections of both kinds.
type Reader interface {
	SonarQube() []connections.Connection
	SonarCloud() []connections.Connection
}

// Picker presents a labeled choice list and suspends until the user selects
// an entry or dismisses the list.
type Picker interface {
	Pick(ctx context.Context, message string, items []host.PickItem) (*host.PickItem, error)
}

type Resolver struct {
	reader Reader
	picker Picker
}

func NewResolver(reader Reader, picker Picker) *Resolver {
	return &Resolver{reader: reader, picker: picker}
}

// ResolveTargetConnection returns the connection a manual binding should use.
// With exactly one connection configured it is returned directly; otherwise
// the user picks from a combined list. A nil Target with a nil error means
// the user dismissed the choice, and the caller must abort the binding
// attempt rather than proceed.
func (r *Resolver) ResolveTargetConnection(ctx context.Context) (*Target, error) {
	sonarQube := r.reader.SonarQube()
	sonarCloud := r.reader.SonarCloud()

	if len(sonarQube)+len(sonarCloud) == 1 {
		single := append(sonarQube, sonarCloud...)[0]
		return targetFor(single), nil
	}

	items := make([]host.PickItem, 0, len(sonarQube)+len(sonarCloud))
	for _, c := range append(sonarQube, sonarCloud...) {
		items = append(items, host.PickItem{
			ID:    c.EffectiveID(),
			Label: c.Label(),
			Kind:  string(c.Kind),
		})
	}
	picked, err := r.picker.Pick(ctx, "Select the connection to bind to", items)
	if err != nil {
		return nil, err
	}
	if picked == nil {
		return nil, nil
	}
	return &Target{
		ConnectionID: picked.ID,
		Label:        picked.Label,
		Kind:         connections.Kind(picked.Kind),
	}, nil
}

func targetFor(c connections.Connection) *Target {
	return &Target{
		ConnectionID: c.EffectiveID(),
		Label:        c.Label(),
		Kind:         c.Kind,
	}
}
