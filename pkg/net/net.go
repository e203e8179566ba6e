// Package net is the network collaborator: resolving URLs to bytes and
// references to URLs.
package net

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const userAgent = "lumen/1.0 (compatible; Go)"

// httpClient is a shared HTTP client with a reasonable timeout.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// FetchError reports a failed resource fetch. StatusCode is zero when
// the failure happened before a response arrived.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetch retrieves the content at rawURL via HTTP/HTTPS.
func Fetch(rawURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	return body, nil
}

// Resolve resolves a possibly-relative reference against a base URL,
// handling scheme-relative, absolute-path and relative-path forms
// including "."/".." segment normalization.
func Resolve(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base url %q: %w", base, err)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parsing reference %q: %w", ref, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
