package utils

import (
	"context"
	"net"

	"github.com/pkg/errors"
)

// HttpTimeout reports whether the request failed because a deadline expired
func HttpTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
