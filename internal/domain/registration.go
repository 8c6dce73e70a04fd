package domain

import "context"

// Confirmation messages returned by successful registrations.
const (
	EventSignupMessage   = "Sign up successful"
	SessionSignupMessage = "Signed up for the session successfully"
)

// Confirmation is the transient outcome of a registration. Nothing is
// recorded, so repeated registrations produce identical confirmations.
// swagger:model Confirmation
type Confirmation struct {
	Message string `json:"message"`
}

// RegistrationService defines the read and register operations over the catalog.
// Ids arrive as raw path values; anything that is not a base-10 integer
// matching a catalog entry yields ErrNotFound.
type RegistrationService interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	RegisterForEvent(ctx context.Context, eventID string) (*Confirmation, error)
	// ListSessionsForEvent returns one slot per session id of the event, in
	// declared order. A slot is nil when the id has no matching session.
	ListSessionsForEvent(ctx context.Context, eventID string) ([]*Session, error)
	// RegisterForSession checks the event and the session independently; the
	// session does not have to be listed by the event.
	RegisterForSession(ctx context.Context, eventID, sessionID string) (*Confirmation, error)
}
