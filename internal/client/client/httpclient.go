package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/client/models"
	"github.com/dmitrijs2005/calckeeper/internal/netx"
)

// HTTPClient talks to the calckeeper JSON API. After Login every request
// carries the access token; it is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu          sync.RWMutex
	accessToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	return mapError(netx.DoJSON(ctx, c.http, method, c.baseURL+path, c.token(), in, out))
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, email string, password []byte) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/register", credentials{Email: email, Password: string(password)}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) error {
	var tok models.Token
	if err := c.do(ctx, http.MethodPost, "/login", credentials{Email: email, Password: string(password)}, &tok); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = tok.AccessToken
	c.mu.Unlock()

	return nil
}

func (c *HTTPClient) Logout() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

func (c *HTTPClient) LoggedIn() bool {
	return c.token() != ""
}

// Ping checks GET /health.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return mapError(netx.DoJSON(ctx, c.http, http.MethodGet, c.baseURL+"/health", "", nil, nil))
}

func (c *HTTPClient) List(ctx context.Context) ([]*models.Calculation, error) {
	var out []*models.Calculation
	if err := c.do(ctx, http.MethodGet, "/calculations/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Get(ctx context.Context, id int64) (*models.Calculation, error) {
	var out models.Calculation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/calculations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Create(ctx context.Context, in models.CalculationInput) (*models.Calculation, error) {
	var out models.Calculation
	if err := c.do(ctx, http.MethodPost, "/calculations/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Update(ctx context.Context, id int64, in models.CalculationInput) (*models.Calculation, error) {
	var out models.Calculation
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/calculations/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/calculations/%d", id), nil, nil)
}
