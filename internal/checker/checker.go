// checker.go - URL probing and outcome classification
package checker

import (
	"net/http"
	"time"
)

// requestTimeout bounds each GET; a slow server counts as unreachable
const requestTimeout = 5 * time.Second

// NewClient returns the HTTP client used for status checks
func NewClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
	}
}

// checkURL performs a GET against targetURL and classifies the result
func checkURL(client *http.Client, targetURL string) Outcome {
	resp, err := client.Get(targetURL)
	if err != nil {
		return OtherError
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return HTTPError
	}
	return Success
}
