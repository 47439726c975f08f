package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code.
// It handles encoding errors safely by marshaling first, preventing
// partial responses if encoding fails after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		// Encoding failed - return 500 instead
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// errorBody is the single-message error payload: {"error": "..."}
type errorBody struct {
	Error string `json:"error"`
}

// errorsBody is the field-level error payload: {"errors": ["...", ...]}
type errorsBody struct {
	Errors []string `json:"errors"`
}

// RespondError writes an error response with a single message.
func RespondError(w http.ResponseWriter, status int, message string) {
	writeErrorPayload(w, status, errorBody{Error: message})
}

// RespondErrors writes an error response carrying field-level messages,
// used for validation failures.
func RespondErrors(w http.ResponseWriter, status int, messages []string) {
	writeErrorPayload(w, status, errorsBody{Errors: messages})
}

func writeErrorPayload(w http.ResponseWriter, status int, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
