package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// LoginResult is the normalized response from the backend's JWT endpoint.
type LoginResult struct {
	Token string
	ID    string
	Email string
	Name  string
}

type rawLogin struct {
	Token       string      `json:"token"`
	UserID      json.Number `json:"user_id"`
	Email       string      `json:"user_email"`
	DisplayName string      `json:"user_display_name"`
	Nicename    string      `json:"user_nicename"`
}

// Login exchanges shopper credentials for a JWT at the backend's login URL.
// That endpoint authenticates by password, so no key/secret are appended.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload, err := json.Marshal(map[string]string{
		"username": email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(payload))
	if err != nil {
		return LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return LoginResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return LoginResult{}, &UpstreamError{Status: resp.StatusCode, Message: drainError(resp.Body)}
	}

	var raw rawLogin
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return LoginResult{}, err
	}
	name := raw.DisplayName
	if name == "" {
		name = raw.Nicename
	}
	return LoginResult{
		Token: raw.Token,
		ID:    raw.UserID.String(),
		Email: raw.Email,
		Name:  name,
	}, nil
}
