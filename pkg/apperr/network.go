package apperr

import (
	"fmt"
	"time"
)

// NetworkError is the root of the network layer: the request could not be
// completed for a transport-level reason.
type NetworkError struct {
	base
	StatusCode int // 0 when unknown
	URL        string
}

func (e *NetworkError) Error() string {
	return e.render("NetworkError", statusURLSuffix(e.StatusCode, e.URL))
}
func (e *NetworkError) Kind() Kind { return KindNetwork }

func NewNetwork(msg string, statusCode int, url string) *NetworkError {
	return &NetworkError{base: base{Msg: msg}, StatusCode: statusCode, URL: url}
}

// ServerError reports a response the server itself flagged as failed; the
// status code is always known.
type ServerError struct {
	base
	StatusCode int
	URL        string
}

func (e *ServerError) Error() string {
	return e.render("ServerError", statusURLSuffix(e.StatusCode, e.URL))
}
func (e *ServerError) Kind() Kind { return KindServer }

func NewServer(msg string, statusCode int, url string) *ServerError {
	return &ServerError{base: base{Msg: msg}, StatusCode: statusCode, URL: url}
}

// TimeoutError reports an operation that exceeded its time budget.
type TimeoutError struct {
	base
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return e.render("TimeoutError", fmt.Sprintf(" (Timeout: %ds)", int(e.Timeout.Seconds())))
}
func (e *TimeoutError) Kind() Kind { return KindTimeout }

func NewTimeout(msg string, timeout time.Duration, cause error) *TimeoutError {
	return &TimeoutError{base: base{Msg: msg, Cause: cause}, Timeout: timeout}
}

// ConnectionError reports that no connection could be established at all.
type ConnectionError struct {
	base
	URL string
}

func (e *ConnectionError) Error() string {
	return e.render("ConnectionError", statusURLSuffix(0, e.URL))
}
func (e *ConnectionError) Kind() Kind { return KindConnection }

func NewConnection(msg string, url string, cause error) *ConnectionError {
	return &ConnectionError{base: base{Msg: msg, Cause: cause}, URL: url}
}

func statusURLSuffix(status int, url string) string {
	s := ""
	if status != 0 {
		s += fmt.Sprintf(" (Status: %d)", status)
	}
	if url != "" {
		s += fmt.Sprintf(" (URL: %s)", url)
	}
	return s
}
