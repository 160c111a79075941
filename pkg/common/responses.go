package common

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// ErrorInfo contains error details rendered to the client
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the envelope for error payloads
type errorResponse struct {
	Error ErrorInfo `json:"error"`
}

// RespondJSON sends a JSON response with the given status code.
// Entities are rendered directly, without a wrapper envelope.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		Error: ErrorInfo{Code: code, Message: message},
	})
}

// ExtractRequestID extracts the request ID from the request, generating
// one when neither the headers nor the context carry it
func ExtractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Amzn-Trace-Id"); id != "" {
		return id
	}
	if id, ok := r.Context().Value("request_id").(string); ok {
		return id
	}
	return uuid.New().String()
}

// StandardErrorCodes defines common error codes
var StandardErrorCodes = struct {
	ValidationError string
	NotFound        string
	InternalError   string
	BadRequest      string
}{
	ValidationError: "VALIDATION_ERROR",
	NotFound:        "NOT_FOUND",
	InternalError:   "INTERNAL_ERROR",
	BadRequest:      "BAD_REQUEST",
}

// ParseJSONBody parses JSON request body with size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}
