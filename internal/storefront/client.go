// Package storefront drives the browse and detail flows of the ticketing
// client: fetching the catalog, filtering it, and evaluating the purchase
// decision against the wallet and auth sessions.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"blocktix/internal/catalog"
	"blocktix/internal/session"
)

var (
	// ErrNotFound indicates the requested record does not exist. It is
	// deliberately distinct from a network failure.
	ErrNotFound = errors.New("not found")
	// ErrNetwork indicates the request could not complete; the caller may
	// retry.
	ErrNetwork = errors.New("network error")
)

// apiError is the backend's normalized error body.
type apiError struct {
	Message string `json:"message"`
}

// Client talks to the storefront API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListEvents fetches the full catalog. The server applies no filtering or
// pagination; ordering and narrowing happen client side.
func (c *Client) ListEvents(ctx context.Context) ([]catalog.Event, error) {
	var events []catalog.Event
	if err := c.get(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event, returning ErrNotFound when the id is
// unknown.
func (c *Client) GetEvent(ctx context.Context, id string) (catalog.Event, error) {
	var event catalog.Event
	if err := c.get(ctx, "/events/"+url.PathEscape(id), &event); err != nil {
		return catalog.Event{}, err
	}
	return event, nil
}

// Signup registers an account and returns its credentials.
func (c *Client) Signup(ctx context.Context, name, email, password string) (session.Credentials, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp struct {
		Token string               `json:"token"`
		User  session.UserIdentity `json:"user"`
	}
	if err := c.post(ctx, "/signup", body, &resp); err != nil {
		return session.Credentials{}, err
	}
	return session.Credentials{Token: resp.Token, User: resp.User}, nil
}

// Login authenticates and returns credentials.
func (c *Client) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string               `json:"token"`
		User  session.UserIdentity `json:"user"`
	}
	if err := c.post(ctx, "/login", body, &resp); err != nil {
		return session.Credentials{}, err
	}
	return session.Credentials{Token: resp.Token, User: resp.User}, nil
}

// SubmitContact sends a contact form submission.
func (c *Client) SubmitContact(ctx context.Context, name, email, subject, message string) error {
	body := map[string]string{"name": name, "email": email, "subject": subject, "message": message}
	return c.post(ctx, "/contact", body, nil)
}

// Profile fetches the identity behind a bearer token.
func (c *Client) Profile(ctx context.Context, token string) (session.UserIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile", nil)
	if err != nil {
		return session.UserIdentity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp struct {
		User session.UserIdentity `json:"user"`
	}
	if err := c.do(req, &resp); err != nil {
		return session.UserIdentity{}, err
	}
	return resp.User, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusNotFound {
			if apiErr.Message != "" {
				return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
			}
			return ErrNotFound
		}
		if apiErr.Message != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("api error (%d)", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
