package errors

// HTTPError represents an HTTP error with a service error code, message,
// and the HTTP status to respond with.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Code     int
	Field    string
	Messages []string
}

// ValidationErrorCollector aggregates validation errors for one request.
type ValidationErrorCollector struct {
	errors []*ValidationError
}
