package helpers

import (
	"encoding/json"
	"net/http"
)

// Error messages for API error responses. Use these with WriteJSONError.
const (
	MsgEventNotFound          = "Event not found"
	MsgEventOrSessionNotFound = "Event or session not found"
	MsgInternalError          = "Internal server error"
)

// MessageResponse is the body of confirmations and of every error response.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes statusCode with a MessageResponse carrying message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}
