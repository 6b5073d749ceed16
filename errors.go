package bahncopilot

// ValidationError reports a missing or malformed request parameter. It is
// always raised before any provider call and maps to a 400 response.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// ProviderError wraps a failure of the journey provider. The message names
// only the failing operation; the wrapped cause is for server-side logs and
// never reaches the caller.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string { return e.Op + " failed" }

func (e *ProviderError) Unwrap() error { return e.Err }
