package requesting

import (
	"fmt"
	"net/http"
	"os"
)

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors folds transport failures and non-2xx statuses into a single
// error return so call sites can wrap client.Do directly.
func RequestErrors(response *http.Response, err error) (*http.Response, error) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, fmt.Errorf("upstream request timed out: %w", err)
		}

		return nil, fmt.Errorf("upstream connection failed: %w", err)
	}

	if !isValidResponse(response.StatusCode) {
		return nil, fmt.Errorf("upstream returned status code %d", response.StatusCode)
	}

	return response, nil
}
