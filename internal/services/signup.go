package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventregistration/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// FlagshipEventName is the event every signup registers for.
	FlagshipEventName = "TechEd 2023"
	// DefaultSessionTitle is used when the caller does not pick a session.
	DefaultSessionTitle = "Opening Keynote"
)

const eventsCacheKey = "events"

type signupService struct {
	client domain.RegistrationClient
	events *expirable.LRU[string, []domain.Event]
	logger *slog.Logger
}

// NewSignupService creates a SignupService backed by a remote registration
// API. The event list is cached for cacheTTL.
func NewSignupService(client domain.RegistrationClient, cacheTTL time.Duration, logger *slog.Logger) domain.SignupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &signupService{
		client: client,
		events: expirable.NewLRU[string, []domain.Event](1, nil, cacheTTL),
		logger: logger,
	}
}

func (s *signupService) SignUp(ctx context.Context, sessionTitle string) (string, error) {
	if strings.TrimSpace(sessionTitle) == "" {
		sessionTitle = DefaultSessionTitle
	}

	event, err := s.flagshipEvent(ctx)
	if err != nil {
		return "", err
	}
	if _, err := s.client.RegisterForEvent(ctx, event.ID); err != nil {
		return "", fmt.Errorf("register for event %d: %w", event.ID, err)
	}

	sessions, err := s.client.Sessions(ctx, event.ID)
	if err != nil {
		return "", fmt.Errorf("list sessions of event %d: %w", event.ID, err)
	}
	var session *domain.Session
	for _, candidate := range sessions {
		if candidate != nil && strings.EqualFold(candidate.Title, sessionTitle) {
			session = candidate
			break
		}
	}
	if session == nil {
		return "", fmt.Errorf("session %q: %w", sessionTitle, domain.ErrNotFound)
	}
	if _, err := s.client.RegisterForSession(ctx, event.ID, session.ID); err != nil {
		return "", fmt.Errorf("register for session %d: %w", session.ID, err)
	}

	s.logger.InfoContext(ctx, "signed up", "event_id", event.ID, "session_id", session.ID)
	return fmt.Sprintf("Yay, we successfully signed you up for the session: %s.", sessionTitle), nil
}

func (s *signupService) flagshipEvent(ctx context.Context) (domain.Event, error) {
	events, ok := s.events.Get(eventsCacheKey)
	if !ok {
		fetched, err := s.client.Events(ctx)
		if err != nil {
			return domain.Event{}, fmt.Errorf("list events: %w", err)
		}
		s.events.Add(eventsCacheKey, fetched)
		events = fetched
	}
	for _, e := range events {
		if e.Name == FlagshipEventName {
			return e, nil
		}
	}
	return domain.Event{}, fmt.Errorf("event %q: %w", FlagshipEventName, domain.ErrNotFound)
}
