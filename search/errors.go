package search

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidQuery is matched by every *InvalidQueryError.
var ErrInvalidQuery = errors.New("invalid query")

// InvalidQueryError is returned before any request is sent.
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return "invalid query: " + e.Reason
}

func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// TransportError wraps a network level failure of a single page request.
type TransportError struct {
	Page int
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on page %d: %v", e.Page, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProviderError is a response that lacks the success payload.
// Detail holds the provider's raw error object, or is empty when there was none.
type ProviderError struct {
	Page    int
	Detail  json.RawMessage
	Code    int
	Message string

	// Err is set when the body itself could not be decoded.
	Err error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("provider error on page %d: %s (code %d)", e.Page, e.Message, e.Code)
	case len(e.Detail) > 0:
		return fmt.Sprintf("provider error on page %d: %s", e.Page, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("provider error on page %d: %v", e.Page, e.Err)
	default:
		return fmt.Sprintf("provider error on page %d: no error payload", e.Page)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// newProviderError keeps the raw payload and lifts VK's error_code/error_msg when present.
func newProviderError(page int, detail json.RawMessage) *ProviderError {
	pe := &ProviderError{Page: page, Detail: detail}

	var known struct {
		Code    int    `json:"error_code"`
		Message string `json:"error_msg"`
	}
	if len(detail) > 0 && json.Unmarshal(detail, &known) == nil {
		pe.Code = known.Code
		pe.Message = known.Message
	}

	return pe
}
