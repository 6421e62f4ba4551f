package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates an invalid route id or a missing entity.
	ErrNotFound = errors.New("not found")

	// ErrNoChange indicates an edit was submitted with unchanged content.
	ErrNoChange = errors.New("You have not made any change")

	// ErrEmptyComment indicates the user submitted a blank comment.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrEmptyContent indicates the user submitted a blank review or report.
	ErrEmptyContent = errors.New("content cannot be empty")
)

// TransportError is a failed API call. Messages holds the server's
// field-level errors flattened into readable lines, in response order.
type TransportError struct {
	Method   string
	Path     string
	Status   int // 0 when the request never got a response
	Messages []string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("API %s %s failed: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("API %s %s returned %d: %s", e.Method, e.Path, e.Status, strings.Join(e.Messages, "; "))
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets callers match on status classes with the package sentinels.
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

// Messages flattens any error into the ordered list shown to the user.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		if len(te.Messages) > 0 {
			return append([]string(nil), te.Messages...)
		}
		if te.Status == 0 {
			return []string{"Network Error"}
		}
		return []string{fmt.Sprintf("Request failed with status code %d", te.Status)}
	}
	for _, sentinel := range []error{ErrNoChange, ErrEmptyComment, ErrEmptyContent, ErrUnauthorized, ErrNotFound} {
		if errors.Is(err, sentinel) {
			return []string{sentinel.Error()}
		}
	}
	return []string{err.Error()}
}
