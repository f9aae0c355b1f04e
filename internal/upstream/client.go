// Package upstream implements the client for the third-party user API.
//
// The upstream is the system of record, but its persistence is explicitly
// unreliable: a successful update is only guaranteed to be reflected in the
// response of that call, not in a later fetch. Callers must not assume
// otherwise. Every call is a single attempt; there are no retries.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/AlvaroRaul7/wpz-test/internal/user"
)

// userPathPrefix is fixed by the external API contract. List and create use
// the collection path; per-user operations append "<id>/".
const userPathPrefix = "/api/v1/user/"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnavailable means the upstream could not be reached or answered a
	// read with a non-success status.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrMalformed means the upstream answered with a body that does not
	// match the user shape.
	ErrMalformed = errors.New("upstream response malformed")
	// ErrUpdateRejected means an individual user update failed.
	ErrUpdateRejected = errors.New("upstream rejected update")
)

// Patch carries the user fields to change; nil fields are left untouched.
type Patch struct {
	FirstName *string        `json:"firstname,omitempty"`
	LastName  *string        `json:"lastname,omitempty"`
	Email     *string        `json:"email,omitempty"`
	Type      *user.UserType `json:"type,omitempty"`
}

// NewUser is the payload for creating a user upstream.
type NewUser struct {
	FirstName string        `json:"firstname"`
	LastName  string        `json:"lastname"`
	Email     *string       `json:"email"`
	Type      user.UserType `json:"type"`
}

// Client talks to the external user API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

var _ user.Upstream = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}
}

// ListUsers fetches the full user snapshot, preserving upstream order.
func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	body, err := c.do(ctx, http.MethodGet, c.url(""), nil, ErrUnavailable)
	if err != nil {
		return nil, err
	}

	var users []user.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "failed to decode user list: %v", err)
	}
	for i := range users {
		if err := c.validate.Struct(&users[i]); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "user at index %d: %v", i, err)
		}
	}

	return users, nil
}

// GetUser fetches a single user by its upstream id.
func (c *Client) GetUser(ctx context.Context, id int64) (user.User, error) {
	body, err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("%d/", id)), nil, ErrUnavailable)
	if err != nil {
		return user.User{}, err
	}

	return c.decodeUser(body)
}

// CreateUser creates a user upstream and returns the record as the upstream
// reports it, id included.
func (c *Client) CreateUser(ctx context.Context, nu NewUser) (user.User, error) {
	body, err := c.do(ctx, http.MethodPost, c.url(""), nu, ErrUnavailable)
	if err != nil {
		return user.User{}, err
	}

	return c.decodeUser(body)
}

// UpdateUser applies a partial update and returns the record the upstream
// echoes back.
func (c *Client) UpdateUser(ctx context.Context, id int64, p Patch) (user.User, error) {
	body, err := c.do(ctx, http.MethodPut, c.url(fmt.Sprintf("%d/", id)), p, ErrUpdateRejected)
	if err != nil {
		return user.User{}, err
	}

	return c.decodeUser(body)
}

// UpdateUserEmail sets only the email of the given user.
func (c *Client) UpdateUserEmail(ctx context.Context, id int64, email string) error {
	_, err := c.UpdateUser(ctx, id, Patch{Email: &email})
	return err
}

// DeleteUser removes a user upstream. No body is expected on success.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, c.url(fmt.Sprintf("%d/", id)), nil, ErrUnavailable)
	return err
}

func (c *Client) url(suffix string) string {
	return c.baseURL + userPathPrefix + suffix
}

func (c *Client) decodeUser(body []byte) (user.User, error) {
	var u user.User
	if err := json.Unmarshal(body, &u); err != nil {
		return user.User{}, errors.Wrapf(ErrMalformed, "failed to decode user: %v", err)
	}
	if err := c.validate.Struct(&u); err != nil {
		return user.User{}, errors.Wrapf(ErrMalformed, "%v", err)
	}

	return u, nil
}

// do performs a single request and returns the raw body of a 2xx response.
// Transport errors and non-success statuses are reported as the given
// sentinel so callers can classify without inspecting the transport.
func (c *Client) do(ctx context.Context, method, url string, payload any, sentinel error) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request payload")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(sentinel, "%s %s: %v", method, url, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(sentinel, "failed to read response body: %v", err)
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(sentinel, "%s %s: unexpected status %d", method, url, res.StatusCode)
	}

	return raw, nil
}
