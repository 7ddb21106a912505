package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vastra/config"
	"vastra/utils"
)

const defaultTimeout = 10 * time.Second

// Client issues authenticated calls against the commerce backend REST API.
// The key/secret pair is appended to the query string of every request; the
// JWT login endpoint is the one exception and uses its own URL.
type Client struct {
	baseURL  string
	key      string
	secret   string
	loginURL string
	http     *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:  cfg.CommerceAPIURL,
		key:      cfg.CommerceKey,
		secret:   cfg.CommerceSecret,
		loginURL: cfg.JWTLoginURL,
		http:     &http.Client{Timeout: defaultTimeout},
	}
}

// UpstreamError preserves the backend's status code so handlers can pass it
// through in the uniform {error} shape.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("commerce backend status %d: %s", e.Status, e.Message)
}

// WriteError translates a client error into the uniform {error} response,
// keeping the upstream status when one is known.
func WriteError(w http.ResponseWriter, err error) {
	if ue, ok := err.(*UpstreamError); ok {
		msg := ue.Message
		if msg == "" {
			msg = "commerce backend error"
		}
		utils.RespondWithError(w, ue.Status, msg)
		return
	}
	utils.RespondWithError(w, http.StatusBadGateway, "commerce backend unavailable")
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}
	// copy before injecting credentials so the caller's values stay clean
	q := make(url.Values, len(query)+2)
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("consumer_key", c.key)
	q.Set("consumer_secret", c.secret)
	endpoint += "?" + q.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &UpstreamError{Status: resp.StatusCode, Message: drainError(resp.Body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	msg := strings.TrimSpace(string(b))
	// backends usually wrap errors as {"message": "..."} or {"error": "..."}
	var wrapped struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(msg), &wrapped); err == nil {
		if wrapped.Message != "" {
			return wrapped.Message
		}
		if wrapped.Error != "" {
			return wrapped.Error
		}
	}
	return msg
}
