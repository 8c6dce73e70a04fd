package domain

import "context"

// RegistrationClient talks to a remote registration API.
type RegistrationClient interface {
	Events(ctx context.Context) ([]Event, error)
	Sessions(ctx context.Context, eventID int) ([]*Session, error)
	RegisterForEvent(ctx context.Context, eventID int) (*Confirmation, error)
	RegisterForSession(ctx context.Context, eventID, sessionID int) (*Confirmation, error)
}

// SignupService signs the current attendee up for the flagship event and one of its sessions.
type SignupService interface {
	// SignUp registers for the flagship event and the session with the given
	// title. An empty title selects the default session.
	SignUp(ctx context.Context, sessionTitle string) (string, error)
}
