package cerrors

import (
	"fmt"
	"strings"
)

// Error is the generic user-friendly error, classified by its ErrorCode
type Error struct {
	ErrorCode ErrorType
	Phase     string
	Target    string
	Reason    string
}

func (e Error) Error() string {
	reason := e.Reason
	if e.Target != "" {
		reason = fmt.Sprintf("%s, target: '%s'", e.Reason, e.Target)
	}
	if e.Phase == "" {
		return reason
	}
	return fmt.Sprintf("[%s]: %s", e.Phase, reason)
}

func (e Error) UserFriendly() bool {
	return true
}

func (e Error) ErrorType() ErrorType {
	if e.ErrorCode == "" {
		return ErrorTypeGeneric
	}
	return e.ErrorCode
}

// HTTPStatus is returned when the endpoint answered with a non-success status
type HTTPStatus struct {
	StatusCode int
	Status     string
	Body       string
}

func (e HTTPStatus) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("HTTP status %s", status)
	}
	return fmt.Sprintf("HTTP status %s: %s", status, body)
}

func (e HTTPStatus) UserFriendly() bool {
	return true
}

func (e HTTPStatus) ErrorType() ErrorType {
	return ErrorTypeHTTPStatus
}
