package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
)

// humanizeError turns a service error into a sentence for the error overlay.
// Errors that did not come from the backend are shown as they are.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Kind {
	case adapter.KindNetwork:
		return "The server is unreachable. Check your connection and try again."
	case adapter.KindTimeout:
		return "The server took too long to respond. Try again later."
	case adapter.KindAuth:
		return "Your session has expired. Please sign in again."
	case adapter.KindHTTP:
		if apiErr.Status >= 500 {
			return fmt.Sprintf("The server failed to handle the request (%d).", apiErr.Status)
		}
		return fmt.Sprintf("Request rejected (%d): %s", apiErr.Status, apiErr.Message)
	default:
		return fmt.Sprintf("Error %d: %s", apiErr.Code, apiErr.Message)
	}
}
