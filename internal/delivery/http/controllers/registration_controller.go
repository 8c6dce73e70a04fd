package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event in seed order.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Router /events [get]
func (c *RegistrationController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventId path integer true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Router /events/{eventId} [get]
func (c *RegistrationController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		c.writeError(w, r, err, helpers.MsgEventNotFound)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// RegisterForEvent godoc
// @Summary Sign up for an event
// @Description Nothing is recorded; repeated calls return the same confirmation.
// @Tags events
// @Produce json
// @Param eventId path integer true "Event ID"
// @Success 201 {object} domain.Confirmation "Sign up successful"
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Router /events/{eventId}/register [post]
func (c *RegistrationController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	conf, err := c.Service.RegisterForEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		c.writeError(w, r, err, helpers.MsgEventNotFound)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, conf)
}

// ListSessionsForEvent godoc
// @Summary List the sessions of an event
// @Description Sessions come back in the order the event lists them. An id with no matching session produces null.
// @Tags sessions
// @Produce json
// @Param eventId path integer true "Event ID"
// @Success 200 {array} domain.Session
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Router /events/{eventId}/sessions [get]
func (c *RegistrationController) ListSessionsForEvent(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListSessionsForEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		c.writeError(w, r, err, helpers.MsgEventNotFound)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, sessions)
}

// RegisterForSession godoc
// @Summary Sign up for a session
// @Description The session is looked up in the whole catalog, not only among the event's sessions.
// @Tags sessions
// @Produce json
// @Param eventId path integer true "Event ID"
// @Param sessionId path integer true "Session ID"
// @Success 201 {object} domain.Confirmation "Signed up for the session successfully"
// @Failure 404 {object} helpers.MessageResponse "Event or session not found"
// @Router /events/{eventId}/sessions/{sessionId}/register [post]
func (c *RegistrationController) RegisterForSession(w http.ResponseWriter, r *http.Request) {
	conf, err := c.Service.RegisterForSession(r.Context(), r.PathValue("eventId"), r.PathValue("sessionId"))
	if err != nil {
		c.writeError(w, r, err, helpers.MsgEventOrSessionNotFound)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, conf)
}

// writeError maps ErrNotFound to 404 with notFoundMsg and anything else to 500.
func (c *RegistrationController) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	c.internalError(w, r, err)
}

func (c *RegistrationController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgInternalError)
}
