package docker

// Container holds the metadata the connect flow needs about one running
// container. Enumerated fresh on every attempt, never persisted.
type Container struct {
	ID      string
	Name    string
	Image   string
	Labels  map[string]string
	State   string
	Status  string // human readable, e.g. "Up 5 minutes"
	Created int64  // unix seconds
}

// ShortID returns the 12-character ID docker prints in `docker ps`.
func (c Container) ShortID() string {
	if len(c.ID) > 12 {
		return c.ID[:12]
	}
	return c.ID
}
