package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

// DefaultBaseURL is the production Cronos developer platform endpoint.
const DefaultBaseURL = "https://developer-platform-api.crypto.com/v1/cdc-developer-platform"

// Status reported inside a response envelope.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// Response is the envelope every platform endpoint replies with. The data
// shape is operation specific; the envelope is returned to the caller
// verbatim, including the status field.
type Response[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data"`
}

// Client issues single-shot JSON requests against the platform API. Each call
// opens a fresh request; there is no retry, caching or pooling beyond what
// net/http provides.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient initializes a platform API client. Zero values select the
// production base URL and a 30s-timeout http.Client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Request describes one API call. Op tags the calling operation
// (e.g. "token.transfer") in logs and error messages.
type Request struct {
	Op     string
	Method string
	Path   string     // resource path, e.g. "/token/25/transfer"
	Query  url.Values // includes the apiKey parameter
	Body   any        // JSON-serialized when non-nil
}

// Do performs one HTTP round trip and decodes the response envelope.
//
// A 2xx status returns the parsed envelope as-is; the status field inside it
// is not inspected here. A non-2xx status yields an error carrying the body's
// "error" field when present, otherwise the numeric HTTP status. Every failure
// is logged once before being returned, prefixed with the operation tag.
func Do[T any](ctx context.Context, c *Client, req Request) (*Response[T], error) {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		buf, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fail(req.Op, err)
		}
		body = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fail(req.Op, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "cronos-devkit/v1")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fail(req.Op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(req.Op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, failMsg(req.Op, remoteError(raw, resp.StatusCode))
	}

	var out Response[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fail(req.Op, err)
	}

	return &out, nil
}

// remoteError extracts the "error" field from a failed response body, falling
// back to the numeric status when the body is unparsable or the field absent.
func remoteError(raw []byte, statusCode int) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("status %d", statusCode)
}

func fail(op string, err error) error {
	log.Error("Request failed", "op", op, "err", err)
	return fmt.Errorf("%s: %w", op, err)
}

func failMsg(op, msg string) error {
	log.Error("Request failed", "op", op, "err", msg)
	return fmt.Errorf("%s: %s", op, msg)
}
