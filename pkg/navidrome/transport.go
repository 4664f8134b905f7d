package navidrome

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	pathLogin         = "/auth/login"
	pathArtists       = "/api/artist"
	pathGetArtistInfo = "/rest/getArtistInfo"

	// headerAuthorization is Navidrome's own bearer header. The standard
	// Authorization header is left free for reverse proxies.
	headerAuthorization = "x-nd-authorization"
)

// call makes a single HTTP request to the Navidrome server.
//
// It handles:
// - Request construction with JSON payload and headers
// - Context cancellation
// - Mapping non-2xx responses to *Error
//
// The body of a non-2xx response is returned together with the *Error so
// that callers can still try to make sense of it. Network failures return a
// nil body. Nothing is retried.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, header http.Header, payload interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("navidrome: failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("navidrome: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	// Only the path is logged; the query may carry credentials.
	c.logDebugf("navidrome: %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("navidrome: %s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("navidrome: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logDebugf("navidrome: %s %s returned %d", method, path, resp.StatusCode)
		return data, &Error{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	return data, nil
}

// decode unmarshals a JSON body into v.
//
// callErr is whatever call returned alongside data. It stays in the returned
// chain so a non-2xx status is never lost, and is returned as is when the
// body decodes cleanly.
func decode(data []byte, v interface{}, what string, callErr error) error {
	if err := json.Unmarshal(data, v); err != nil {
		decErr := fmt.Errorf("%w: %s: %v", ErrDecode, what, err)
		if callErr != nil {
			return errors.Join(callErr, decErr)
		}
		return decErr
	}
	return callErr
}

// isAPIError reports whether err is (or wraps) an *Error.
func isAPIError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
