package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a thin PostgREST client. It is stateless apart from the
// pooled http.Client, so a single instance is shared by every repository
// and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// endpoint builds <base>/rest/v1/<resource>?<query>.
func (c *Client) endpoint(resource string, query *Query) string {
	u := c.baseURL + "/rest/v1/" + resource
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// Get issues a filtered list request and decodes the JSON array into out.
func (c *Client) Get(ctx context.Context, resource string, query *Query, out any) error {
	return c.do(ctx, http.MethodGet, resource, query, nil, nil, out)
}

// Post inserts a new row.
func (c *Client) Post(ctx context.Context, resource string, body any) error {
	return c.do(ctx, http.MethodPost, resource, nil, body, nil, nil)
}

// Upsert inserts a row, merging into the existing one when the declared
// conflict columns collide. The Prefer header tells the backend to
// overwrite rather than reject.
func (c *Client) Upsert(ctx context.Context, resource, onConflict string, body any) error {
	headers := map[string]string{"Prefer": "resolution=merge-duplicates"}
	return c.do(ctx, http.MethodPost, resource, NewQuery().OnConflict(onConflict), body, headers, nil)
}

// Patch updates the rows matched by the query's identity predicate.
func (c *Client) Patch(ctx context.Context, resource string, query *Query, body any) error {
	return c.do(ctx, http.MethodPatch, resource, query, body, nil, nil)
}

// Delete removes the rows matched by the query's identity predicate.
func (c *Client) Delete(ctx context.Context, resource string, query *Query) error {
	return c.do(ctx, http.MethodDelete, resource, query, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, resource string, query *Query, body any, headers map[string]string, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &DecodeError{Message: "encode request body: " + err.Error()}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(resource, query), reqBody)
	if err != nil {
		return &TransportError{Message: err.Error()}
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Message: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Best-effort body read for diagnostics; empty on failure.
		raw, _ := io.ReadAll(res.Body)
		return &BackendError{Status: res.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &DecodeError{Message: "read response body: " + err.Error()}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Message: err.Error(), RawBody: string(raw)}
	}
	return nil
}
