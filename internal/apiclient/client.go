package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/suar-net/suar-dash/internal/model"
)

const (
	maxResponseBodySize = 64 * 1024 * 1024 // 64 MB, raw payloads are embedded
	proxyRequestsPath   = "/api/proxy-requests"
)

var (
	// ErrAPI is returned when the backend answers with a non-null error field.
	ErrAPI = errors.New("api error")
	// ErrMalformedEnvelope is returned when the body is not a valid envelope.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)

// Client talks to the proxy request backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the API at baseURL. A zero timeout disables the
// per-call deadline.
func New(baseURL string, timeout time.Duration) *Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// ListProxyRequests fetches the whole record set in server order. An explicit
// null data field yields an empty slice; a missing one is malformed.
func (c *Client) ListProxyRequests(ctx context.Context) ([]model.ProxyRequest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+proxyRequestsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch proxy requests: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(&io.LimitedReader{R: resp.Body, N: maxResponseBodySize})
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var list model.ProxyRequestList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("%w: status %d: %v", ErrMalformedEnvelope, resp.StatusCode, err)
	}
	if list.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrAPI, *list.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrAPI, resp.StatusCode)
	}
	if err := requireMember(body, "data"); err != nil {
		return nil, err
	}
	if err := model.Validate(&list); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, model.ValidationError(err))
	}

	if list.Data == nil {
		return []model.ProxyRequest{}, nil
	}
	return list.Data, nil
}

// requireMember fails unless body is a JSON object with the named member.
// An explicit null counts as present.
func requireMember(body []byte, name string) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if _, ok := members[name]; !ok {
		return fmt.Errorf("%w: missing %q", ErrMalformedEnvelope, name)
	}
	return nil
}

// DeleteProxyRequest asks the backend to delete the record with id. The id is
// escaped into a single path segment.
func (c *Client) DeleteProxyRequest(ctx context.Context, id string) error {
	endpoint := c.baseURL + proxyRequestsPath + "/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete proxy request %s: %w", id, err)
	}
	defer resp.Body.Close()

	var env model.Envelope[json.RawMessage]
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&env); err == nil && env.Error != nil {
		return fmt.Errorf("%w: %s", ErrAPI, *env.Error)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: unexpected status %d", ErrAPI, resp.StatusCode)
	}
	return nil
}
