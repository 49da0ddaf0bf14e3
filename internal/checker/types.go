// types.go - Outcome classification for URL checks
package checker

// Outcome classifies a single URL check
type Outcome int

const (
	// Success means the GET completed with a non-error status
	Success Outcome = iota
	// HTTPError means the server answered with a 4xx or 5xx status
	HTTPError
	// OtherError covers everything else: timeout, connection refused,
	// DNS failure, malformed URL
	OtherError
)

// String returns a short name for logging in tests
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case HTTPError:
		return "http error"
	default:
		return "error"
	}
}
