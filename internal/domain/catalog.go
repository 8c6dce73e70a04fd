package domain

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Catalog is the immutable set of events and sessions served by the API.
// It is built once at startup and shared read-only between requests.
type Catalog struct {
	events       []Event
	eventIndex   map[int]int
	sessions     []Session
	sessionIndex map[int]int
}

// DanglingRef is a session id referenced by an event with no matching session.
type DanglingRef struct {
	EventID   int
	SessionID int
}

// NewCatalog copies events and sessions into a new Catalog. Duplicate ids in
// either collection are reported together; references to unknown sessions are
// tolerated and can be inspected with DanglingSessionIDs.
func NewCatalog(events []Event, sessions []Session) (*Catalog, error) {
	c := &Catalog{
		events:       make([]Event, 0, len(events)),
		eventIndex:   make(map[int]int, len(events)),
		sessions:     make([]Session, 0, len(sessions)),
		sessionIndex: make(map[int]int, len(sessions)),
	}

	var result *multierror.Error
	for _, s := range sessions {
		if _, dup := c.sessionIndex[s.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("duplicate session id %d", s.ID))
			continue
		}
		c.sessionIndex[s.ID] = len(c.sessions)
		c.sessions = append(c.sessions, s)
	}
	for _, e := range events {
		if _, dup := c.eventIndex[e.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("duplicate event id %d", e.ID))
			continue
		}
		c.eventIndex[e.ID] = len(c.events)
		c.events = append(c.events, e.clone())
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// Events returns every event in seed order.
func (c *Catalog) Events() []Event {
	out := make([]Event, len(c.events))
	for i, e := range c.events {
		out[i] = e.clone()
	}
	return out
}

// Event returns the event with the given id.
func (c *Catalog) Event(id int) (Event, bool) {
	i, ok := c.eventIndex[id]
	if !ok {
		return Event{}, false
	}
	return c.events[i].clone(), true
}

// Session returns the session with the given id.
func (c *Catalog) Session(id int) (Session, bool) {
	i, ok := c.sessionIndex[id]
	if !ok {
		return Session{}, false
	}
	return c.sessions[i], true
}

// Sessions returns every session in seed order.
func (c *Catalog) Sessions() []Session {
	return append([]Session{}, c.sessions...)
}

// DanglingSessionIDs lists event session references with no matching session.
func (c *Catalog) DanglingSessionIDs() []DanglingRef {
	var refs []DanglingRef
	for _, e := range c.events {
		for _, sid := range e.SessionIDs {
			if _, ok := c.sessionIndex[sid]; !ok {
				refs = append(refs, DanglingRef{EventID: e.ID, SessionID: sid})
			}
		}
	}
	return refs
}

// CatalogLoader reads a catalog from an external source.
type CatalogLoader interface {
	Load(ctx context.Context) (*Catalog, error)
}

// DefaultCatalog returns the built-in seed catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultEvents(), DefaultSessions())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultSessions is the built-in session seed.
func DefaultSessions() []Session {
	return []Session{
		NewSession(101, "Opening Keynote", 60, "Main Stage"),
		NewSession(102, "Build Resilient Apps on SAP BTP with the SAP Cloud SDK", 45, "Hall A"),
		NewSession(103, "Develop CAP Applications with Ease", 90, "Hall B"),
		NewSession(104, "Elevate your Business with Joule", 45, "Main Stage"),
		NewSession(201, "Some session", 20, "Somewhere"),
		NewSession(202, "Some other session", 40, "Anywhere"),
	}
}

// DefaultEvents is the built-in event seed.
func DefaultEvents() []Event {
	return []Event{
		NewEvent(1, "TechEd 2023", 101, 102, 103, 104),
		NewEvent(2, "Some other Event", 201, 202),
	}
}
