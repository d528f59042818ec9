// Package identity talks to the external identity provider that is the
// system of record for user credentials. The local users table never stores
// passwords; sign-up and credential changes go through this client.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstream marks any non-success response from the identity provider.
var ErrUpstream = errors.New("identity provider request failed")

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUpResult holds the provider-issued tokens for a newly created account.
type SignUpResult struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
}

// SignUp registers a new email/password account with the provider.
func (c *Client) SignUp(ctx context.Context, email, password string) (*SignUpResult, error) {
	body := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var result SignUpResult
	if err := c.post(ctx, "/v1/accounts:signUp", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdatePassword changes the password of the account identified by idToken.
func (c *Client) UpdatePassword(ctx context.Context, idToken, newPassword string) error {
	body := map[string]interface{}{
		"idToken":           idToken,
		"password":          newPassword,
		"returnSecureToken": false,
	}
	return c.post(ctx, "/v1/accounts:update", body, nil)
}

// UpdateEmail changes the email of the account identified by idToken.
func (c *Client) UpdateEmail(ctx context.Context, idToken, newEmail string) error {
	body := map[string]interface{}{
		"idToken":           idToken,
		"email":             newEmail,
		"returnSecureToken": false,
	}
	return c.post(ctx, "/v1/accounts:update", body, nil)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s%s?key=%s", c.baseURL, path, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		content, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d, content: %s", ErrUpstream, resp.StatusCode, content)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: invalid response body: %v", ErrUpstream, err)
		}
	}

	return nil
}
