package importer

import "fmt"

// Import failures are typed so the HTTP layer can surface each kind
// distinctly. All of them are recoverable: nothing is applied on
// failure and the session stays where it was. Schema and syntax
// failures reuse model.ValidationError and model.ParseError.

// FormatError rejects a file before parsing: wrong extension and wrong
// mimetype.
type FormatError struct {
	Filename    string
	ContentType string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("not a JSON file: %q (content type %q)", e.Filename, e.ContentType)
}

// SecurityError rejects a remote URL before any network access.
type SecurityError struct {
	URL    string
	Scheme string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("only https:// URLs are allowed, got scheme %q", e.Scheme)
}

// NetworkError covers transport failures and non-2xx responses.
// StatusCode is zero when no response was received.
type NetworkError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s failed: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError marks a remote fetch that exceeded the fixed budget.
// Kept distinct from NetworkError so the user sees a different message.
type TimeoutError struct {
	URL string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("fetch %s timed out", e.URL)
}
