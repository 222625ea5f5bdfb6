package tui

import (
	"errors"
	"net"
	"strings"
)

// humanizeConnectionError turns transport-level failures into a short
// message the user can act on; other errors keep their server-sent detail.
func humanizeConnectionError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	if errors.As(err, &netErr) || strings.Contains(err.Error(), "connection refused") {
		return "the server is unreachable, check that it is running and try again"
	}

	return err.Error()
}
