package upstream

import (
	"errors"
	"fmt"
)

// Kind classifies a failed platform call so every handler can map failures
// to status codes and messages the same way.
type Kind string

const (
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "notfound"
	KindServer     Kind = "server"
	KindNetwork    Kind = "network"
)

// Error is a failed platform call. Message carries the server-provided
// message when one could be extracted; it may be empty.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %s (status %d)", e.Kind, e.Status)
}

// KindOf extracts the error kind, defaulting to KindNetwork for anything
// that is not an *Error (transport failures, decode failures).
func KindOf(err error) Kind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return KindNetwork
}

// MessageOf extracts the server-provided message, or "" when none exists.
func MessageOf(err error) string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Message
	}
	return ""
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 404:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}
