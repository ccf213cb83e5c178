package connections

import "strings"

// Kind tags a connection with the flavor of server it points at. The tag is
// assigned when the configuration is loaded, not inferred at display time.
type Kind string

const (
	KindSonarQube  Kind = "SonarQube"
	KindSonarCloud Kind = "SonarCloud"
)

// DefaultConnectionID is the sentinel used for a connection configured
// without an explicit identifier.
const DefaultConnectionID = "<default>"

type Connection struct {
	ID              string
	Kind            Kind
	ServerURL       string
	OrganizationKey string
}

// EffectiveID returns the explicit identifier, or the default sentinel when
// none was configured.
func (c Connection) EffectiveID() string {
	if id := strings.TrimSpace(c.ID); id != "" {
		return id
	}
	return DefaultConnectionID
}

// Label returns the display name for pick lists: the explicit identifier when
// present, else the kind-specific natural key.
func (c Connection) Label() string {
	if id := strings.TrimSpace(c.ID); id != "" {
		return id
	}
	if c.Kind == KindSonarCloud {
		return strings.TrimSpace(c.OrganizationKey)
	}
	return strings.TrimSpace(c.ServerURL)
}

func normalize(c Connection) Connection {
	c.ID = strings.TrimSpace(c.ID)
	c.ServerURL = strings.TrimSpace(c.ServerURL)
	c.OrganizationKey = strings.TrimSpace(c.OrganizationKey)
	return c
}
