package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
)

// Client is the API client for the store-rating backend. Once a token is
// set it is attached as a bearer credential to every request, mirroring the
// web client's request interceptor.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SetToken(token string) { c.token = token }
func (c *Client) Token() string         { return c.token }

// apiError mirrors the server's two error shapes; whichever field is set
// becomes the message.
type apiError struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Status  int    `json:"-"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != "" {
		return e.Err
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr) // fall back to generic message
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Register creates a self-service account with the "user" role.
func (c *Client) Register(ctx context.Context, name, email, password, address string) error {
	body := map[string]string{"name": name, "email": email, "password": password, "address": address}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// Login exchanges credentials for a token and remembers it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return "", err
	}
	c.token = res.Token
	return res.Role, nil
}

// ProbeAuth checks whether the stored token is still accepted by the server.
// There is no dedicated verification endpoint; the admin user listing plays
// that part for every role.
func (c *Client) ProbeAuth(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil)
}

func (c *Client) Stores(ctx context.Context) ([]entity.StoreWithRating, error) {
	var stores []entity.StoreWithRating
	err := c.do(ctx, http.MethodGet, "/api/stores", nil, &stores)
	return stores, err
}

func (c *Client) Users(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &users)
	return users, err
}

func (c *Client) SubmitRating(ctx context.Context, storeID int64, rating int) error {
	body := map[string]interface{}{"store_id": storeID, "rating": rating}
	return c.do(ctx, http.MethodPost, "/api/ratings", body, nil)
}

func (c *Client) MyRatings(ctx context.Context) ([]entity.UserRating, error) {
	var ratings []entity.UserRating
	err := c.do(ctx, http.MethodGet, "/api/ratings/user", nil, &ratings)
	return ratings, err
}

func (c *Client) OwnerRollup(ctx context.Context) ([]entity.OwnerStoreRollup, error) {
	var rollups []entity.OwnerStoreRollup
	err := c.do(ctx, http.MethodGet, "/api/ratings/owner", nil, &rollups)
	return rollups, err
}

func (c *Client) Raters(ctx context.Context) ([]entity.StoreRater, error) {
	var raters []entity.StoreRater
	err := c.do(ctx, http.MethodGet, "/api/ratings/owner/users-rated", nil, &raters)
	return raters, err
}

func (c *Client) RatingsCount(ctx context.Context) (int64, error) {
	var res struct {
		Count int64 `json:"count"`
	}
	err := c.do(ctx, http.MethodGet, "/api/admin/ratings/count", nil, &res)
	return res.Count, err
}
