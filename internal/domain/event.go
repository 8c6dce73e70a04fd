package domain

// Event represents a conference event. SessionIDs reference sessions in the
// catalog in the order they are presented to attendees.
// swagger:model Event
type Event struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	SessionIDs []int  `json:"sessionIDs"`
}

// NewEvent returns a new Event with the given fields.
func NewEvent(id int, name string, sessionIDs ...int) Event {
	return Event{
		ID:         id,
		Name:       name,
		SessionIDs: append([]int{}, sessionIDs...),
	}
}

// clone returns a deep copy so callers never share the SessionIDs backing array.
func (e Event) clone() Event {
	e.SessionIDs = append([]int{}, e.SessionIDs...)
	return e
}
