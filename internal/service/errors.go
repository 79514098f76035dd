package service

// ValidationError reports malformed input to a create or update. It is
// raised before any store write is attempted, so a failed operation is
// never partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
