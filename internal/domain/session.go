package domain

// Session represents a conference session or talk. Several events may
// reference the same session.
// swagger:model Session
type Session struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"` // minutes
	Location string `json:"location"`
}

// NewSession returns a new Session with the given fields.
func NewSession(id int, title string, duration int, location string) Session {
	return Session{
		ID:       id,
		Title:    title,
		Duration: duration,
		Location: location,
	}
}
