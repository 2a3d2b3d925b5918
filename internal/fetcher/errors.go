package fetcher

import "fmt"

// ErrorKind distinguishes the two transport failure modes.
type ErrorKind int

const (
	KindNetwork    ErrorKind = iota // connection, DNS, timeout, bad URL
	KindHTTPStatus                  // server answered with status >= 400
)

func (k ErrorKind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http-status"
	case KindNetwork:
		return "network"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// TransportError is returned by every Fetcher when the page could not be fetched.
type TransportError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int    // KindHTTPStatus only
	Status     string // e.g. "404 Not Found"
	Err        error  // KindNetwork only
}

func (e *TransportError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
	}
	if e.Err == nil {
		return fmt.Sprintf("request to %s failed", e.URL)
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func statusError(url string, code int, status string) *TransportError {
	return &TransportError{Kind: KindHTTPStatus, URL: url, StatusCode: code, Status: status}
}

func networkError(url string, err error) *TransportError {
	return &TransportError{Kind: KindNetwork, URL: url, Err: err}
}
