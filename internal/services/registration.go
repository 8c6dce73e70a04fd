package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"eventregistration/internal/domain"
)

type registrationService struct {
	catalog *domain.Catalog
	logger  *slog.Logger
}

// NewRegistrationService creates a RegistrationService over the given catalog.
func NewRegistrationService(catalog *domain.Catalog, logger *slog.Logger) domain.RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &registrationService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *registrationService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.catalog.Events(), nil
}

func (s *registrationService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.lookupEvent(eventID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *registrationService) RegisterForEvent(ctx context.Context, eventID string) (*domain.Confirmation, error) {
	event, err := s.lookupEvent(eventID)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "event sign up", "event_id", event.ID)
	return &domain.Confirmation{Message: domain.EventSignupMessage}, nil
}

func (s *registrationService) ListSessionsForEvent(ctx context.Context, eventID string) ([]*domain.Session, error) {
	event, err := s.lookupEvent(eventID)
	if err != nil {
		return nil, err
	}
	sessions := make([]*domain.Session, len(event.SessionIDs))
	for i, sid := range event.SessionIDs {
		session, ok := s.catalog.Session(sid)
		if !ok {
			s.logger.WarnContext(ctx, "event references unknown session", "event_id", event.ID, "session_id", sid)
			continue
		}
		sessions[i] = &session
	}
	return sessions, nil
}

func (s *registrationService) RegisterForSession(ctx context.Context, eventID, sessionID string) (*domain.Confirmation, error) {
	event, err := s.lookupEvent(eventID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", sessionID, err)
	}
	session, ok := s.catalog.Session(id)
	if !ok {
		return nil, fmt.Errorf("session %d: %w", id, domain.ErrNotFound)
	}
	s.logger.DebugContext(ctx, "session sign up", "event_id", event.ID, "session_id", session.ID)
	return &domain.Confirmation{Message: domain.SessionSignupMessage}, nil
}

func (s *registrationService) lookupEvent(eventID string) (domain.Event, error) {
	id, err := parseID(eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event %q: %w", eventID, err)
	}
	event, ok := s.catalog.Event(id)
	if !ok {
		return domain.Event{}, fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
	}
	return event, nil
}

// parseID converts a path value to a catalog id. Malformed input cannot match
// any record, so it is reported as ErrNotFound.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
