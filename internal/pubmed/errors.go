// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"errors"
	"fmt"

	"github.com/pdiddy/get-papers-list/internal/httputil"
)

// TransportError reports a network failure or non-success HTTP status while
// talking to an E-utilities endpoint.
type TransportError struct {
	// Op is the endpoint that failed: "esearch" or "esummary".
	Op string

	// PubmedID is the identifier being fetched. Empty for esearch.
	PubmedID string

	// StatusCode is the HTTP status when the failure was a non-2xx response,
	// 0 for network errors.
	StatusCode int

	Err error
}

func (e *TransportError) Error() string {
	target := e.Op
	if e.PubmedID != "" {
		target = fmt.Sprintf("%s (id %s)", e.Op, e.PubmedID)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: remote service returned HTTP %d", target, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed: %v", target, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not the expected XML document.
type ParseError struct {
	Op       string
	PubmedID string
	Err      error
}

func (e *ParseError) Error() string {
	if e.PubmedID != "" {
		return fmt.Sprintf("%s (id %s): parsing response: %v", e.Op, e.PubmedID, e.Err)
	}
	return fmt.Sprintf("%s: parsing response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// transportError wraps err from httputil.Get, lifting the status code when
// the failure was a non-2xx response.
func transportError(op, id string, err error) error {
	te := &TransportError{Op: op, PubmedID: id, Err: err}
	var se *httputil.StatusError
	if errors.As(err, &se) {
		te.StatusCode = se.StatusCode
	}
	return te
}
