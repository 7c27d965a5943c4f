package dto

// APIError is the error payload returned by every failing endpoint.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// InternalError returns a generic 500 payload.
func InternalError() APIError {
	return APIError{Error: "internal_error", Message: "something went wrong"}
}

// BadRequest returns a 400 payload with the given message.
func BadRequest(msg string) APIError {
	return APIError{Error: "bad_request", Message: msg}
}

// NotFound returns a 404 payload with the given message.
func NotFound(msg string) APIError {
	return APIError{Error: "not_found", Message: msg}
}

// TokenMissing returns the payload for a shop without a stored credential.
func TokenMissing(msg string) APIError {
	return APIError{Error: "token_missing", Message: msg}
}

// FetchInProgress returns the payload for a rejected concurrent fetch.
func FetchInProgress() APIError {
	return APIError{Error: "fetch_in_progress", Message: "a conversion fetch is already running, try again when it finishes"}
}

// UpstreamError returns the payload for an upstream API failure, carrying the
// upstream message verbatim.
func UpstreamError(msg string) APIError {
	return APIError{Error: "upstream_error", Message: msg}
}
