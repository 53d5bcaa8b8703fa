// Package codegurus provides the Go client for the Learn Together API.
//
// Learn Together is a learning-coordination platform connecting students,
// volunteers, parents and administrators. The client exposes one service
// per backend resource (users, parents, students, skills, sessions,
// videos) and a typed error model for everything the backend can reject.
package codegurus

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default Learn Together API endpoint.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// apiPrefix is prepended to every resource path.
	apiPrefix = "/api/v1"
)

// Client is the Learn Together API client.
//
// Use NewClient to create a client, then WithBearerToken to derive an
// authenticated client for a signed-in session:
//
//	client := codegurus.NewClient(codegurus.WithBaseURL("https://api.learntogether.org"))
//	authed := client.WithBearerToken(token)
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client

	// Services
	Users    *UsersService
	Parents  *ParentsService
	Students *StudentsService
	Skills   *SkillsService
	Sessions *SessionsService
	Videos   *VideosService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithBearerToken sets the bearer token attached to every request.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.bearerToken = token
	}
}

// NewClient creates a new Learn Together API client.
//
// A client without a bearer token can only call public endpoints
// (user registration, read-only listings). Everything else returns
// an unauthorized error from the backend.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.initServices()
	return c
}

// WithBearerToken returns a copy of the client that attaches the given
// bearer token to every request. The original client is not modified,
// so concurrent sessions never share credential state.
func (c *Client) WithBearerToken(token string) *Client {
	derived := &Client{
		baseURL:     c.baseURL,
		bearerToken: token,
		httpClient:  c.httpClient,
	}
	derived.initServices()
	return derived
}

func (c *Client) initServices() {
	c.Users = &UsersService{client: c}
	c.Parents = &ParentsService{client: c}
	c.Students = &StudentsService{client: c}
	c.Skills = &SkillsService{client: c}
	c.Sessions = &SessionsService{client: c}
	c.Videos = &VideosService{client: c}
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticated reports whether the client carries a bearer token.
func (c *Client) Authenticated() bool {
	return c.bearerToken != ""
}
