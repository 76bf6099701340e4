package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the HTTP adapter for the Gateway contract. All shape variance
// the API exhibits (bare lists vs {"results": [...]} envelopes, a single
// object vs a list from /users/) is normalized here so nothing above this
// layer ever sees it.
type Client struct {
	baseURL string
	http    *http.Client
	access  string
}

var _ Gateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetAccessToken installs the bearer credential used on every call except
// token/signup.
func (c *Client) SetAccessToken(token string) {
	c.access = token
}

func (c *Client) AccessToken() string {
	return c.access
}

// ----- auth -----

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login obtains a token pair. The identifier field is picked the way the
// login form does it: anything with an "@" goes up as email.
func (c *Client) Login(ctx context.Context, identifier, password string) (*TokenPair, error) {
	body := map[string]string{"password": password}
	if strings.Contains(identifier, "@") {
		body["email"] = strings.TrimSpace(identifier)
	} else {
		body["username"] = strings.TrimSpace(identifier)
	}

	raw, err := c.do(ctx, http.MethodPost, "/api/token/", body, false)
	if err != nil {
		return nil, err
	}
	var pair TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, fmt.Errorf("decode token pair: %w", err)
	}
	c.access = pair.Access
	return &pair, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": refreshToken}, false)
	if err != nil {
		return "", err
	}
	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode refresh: %w", err)
	}
	c.access = out.Access
	return out.Access, nil
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*User, error) {
	body := map[string]string{
		"username": strings.TrimSpace(username),
		"email":    strings.TrimSpace(email),
		"password": password,
	}
	raw, err := c.do(ctx, http.MethodPost, "/api/signup/", body, false)
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}

// ----- reads -----

func (c *Client) Tables(ctx context.Context) ([]Table, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/tables/", nil, true)
	if err != nil {
		return nil, err
	}
	return decodeList[Table](raw)
}

func (c *Client) Items(ctx context.Context) ([]MenuItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/items/", nil, true)
	if err != nil {
		return nil, err
	}
	return decodeList[MenuItem](raw)
}

func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/orders/", nil, true)
	if err != nil {
		return nil, err
	}
	return decodeList[Order](raw)
}

// Users normalizes the privileged (list) and non-privileged (single
// object) answers into one canonical list.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/users/", nil, true)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		// could still be an envelope
		var env struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Results) > 0 {
			return decodeList[User](env.Results)
		}
		var u User
		if err := json.Unmarshal(trimmed, &u); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		return []User{u}, nil
	}
	return decodeList[User](trimmed)
}

// ----- mutations -----

func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/orders/place_order/", req, true)
	if err != nil {
		return nil, err
	}
	var o Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &o, nil
}

func (c *Client) Checkout(ctx context.Context, orderID int, name, phone string) (*Order, error) {
	body := map[string]string{"name": name, "phone_number": phone}
	raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/orders/%d/checkout/", orderID), body, true)
	if err != nil {
		return nil, err
	}
	var o Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &o, nil
}

// ----- plumbing -----

func (c *Client) do(ctx context.Context, method, path string, body any, withAuth bool) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if withAuth && c.access != "" {
		req.Header.Set("Authorization", "Bearer "+c.access)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &APIError{Status: res.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// errorMessage digs the human-readable message out of an error body;
// different endpoints use "error" and "detail" interchangeably.
func errorMessage(data []byte) string {
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Detail
}

// decodeList accepts both a bare JSON array and the {"results": [...]}
// envelope some deployments wrap lists in.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)

	var out []T
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return out, nil
	}

	var env struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode list envelope: %w", err)
	}
	return env.Results, nil
}
