package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/quickticket/quickticket-cli/internal/client/models"
)

// RESTClient implements Client over the backend's HTTP/JSON API.
type RESTClient struct {
	baseURL string
	http    *http.Client
}

// NewRESTClient builds a client for the backend at baseURL. The http.Client
// carries the request timeout configured by the caller.
func NewRESTClient(baseURL string, httpClient *http.Client) *RESTClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Close releases idle connections held by the underlying transport.
func (c *RESTClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do sends a JSON request and decodes a 2xx response into out (out may be
// nil for responses whose body is not consumed). Non-2xx responses are
// returned as *StatusError; transport failures map to ErrUnavailable.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts the server's error text from a {"error": "..."}
// body, tolerating any other shape.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Error
}

func (c *RESTClient) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &user)
	if err != nil {
		var se *StatusError
		// The backend answers 400 for a duplicate email; newer revisions
		// use 409.
		if errors.As(err, &se) && (se.Code == http.StatusBadRequest || se.Code == http.StatusConflict) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) Login(ctx context.Context, email string, password string) (*models.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &user)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Code == http.StatusBadRequest || se.Code == http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) TicketStatus(ctx context.Context, email string) (*TicketStatus, error) {
	query := url.Values{"email": []string{email}}
	var status TicketStatus
	if err := c.do(ctx, http.MethodGet, "/api/tickets/status", query, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *RESTClient) ClaimTicket(ctx context.Context, email string) (*TicketStatus, error) {
	body := struct {
		Email string `json:"email"`
	}{Email: email}

	var status TicketStatus
	if err := c.do(ctx, http.MethodPost, "/api/tickets/claim", nil, body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *RESTClient) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RESTClient) Product(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *RESTClient) Cart(ctx context.Context, email string) ([]models.CartItem, error) {
	var items []models.CartItem
	path := "/api/cart/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *RESTClient) AddCartItem(ctx context.Context, req CartItemRequest) (*models.CartItem, error) {
	var item models.CartItem
	if err := c.do(ctx, http.MethodPost, "/api/cart", nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RESTClient) UpdateCartItem(ctx context.Context, id int64, quantity int) (*models.CartItem, error) {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}

	var item models.CartItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/%d", id), nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RESTClient) RemoveCartItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", id), nil, nil, nil)
}
