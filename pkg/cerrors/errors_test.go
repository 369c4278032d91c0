package cerrors

import (
	"errors"
	"testing"

	"github.com/palantir/stacktrace"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      Error
		expected string
	}{
		{"reason only", Error{Reason: "bad input"}, "bad input"},
		{"with phase", Error{Phase: "launch", Reason: "bad input"}, "[launch]: bad input"},
		{"with target", Error{Target: "yaml2", Reason: "unsupported format"}, "unsupported format, target: 'yaml2'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, ErrorTypeGeneric, Error{}.ErrorType())
	assert.Equal(t, ErrorTypeTimeout, Error{ErrorCode: ErrorTypeTimeout}.ErrorType())
	assert.Equal(t, ErrorTypeHTTPStatus, HTTPStatus{StatusCode: 500}.ErrorType())
	assert.Equal(t, ErrorTypeNonUserFriendly, GetErrorType(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, "HTTP status 500", HTTPStatus{StatusCode: 500}.Error())
	assert.Equal(t, "HTTP status 401 Unauthorized: invalid credentials", HTTPStatus{StatusCode: 401, Status: "401 Unauthorized", Body: "invalid credentials\n"}.Error())
}

func TestGetRootCauseAndErrorCode(t *testing.T) {
	root := Error{ErrorCode: ErrorTypeSerialization, Reason: "failed to serialize"}
	msg, code := GetRootCauseAndErrorCode(stacktrace.Propagate(root, "could not build the request"))
	assert.Equal(t, "failed to serialize", msg)
	assert.Equal(t, ErrorTypeSerialization, code)

	plain := errors.New("boom")
	msg, code = GetRootCauseAndErrorCode(plain)
	assert.Equal(t, "boom", msg)
	assert.Equal(t, ErrorTypeNonUserFriendly, code)
}
