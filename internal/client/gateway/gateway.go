// Package gateway is the client's view of the QuickTicket backend: a small
// REST/JSON surface for auth, daily tickets, the product catalog, and the
// cart. The backend is an external collaborator; everything here is a thin,
// contract-exact wrapper around it.
package gateway

import (
	"context"

	"github.com/quickticket/quickticket-cli/internal/client/models"
)

// TicketStatus is the wire payload of the ticket endpoints. LastTicketDate
// may be absent in the response, which decodes to an empty string.
type TicketStatus struct {
	UsedToday      bool   `json:"ticketUsedToday"`
	LastTicketDate string `json:"lastTicketDate"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// CartItemRequest is the body of POST /api/cart.
type CartItemRequest struct {
	UserEmail string `json:"userEmail"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Client defines the backend operations the CLI depends on.
//
// All methods honor context cancellation. Errors are mapped to the
// sentinels in errors.go where the spec assigns them a distinct meaning;
// everything else surfaces as a *StatusError or transport error.
type Client interface {
	Close() error

	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email string, password string) (*models.User, error)

	TicketStatus(ctx context.Context, email string) (*TicketStatus, error)
	ClaimTicket(ctx context.Context, email string) (*TicketStatus, error)

	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int64) (*models.Product, error)

	Cart(ctx context.Context, email string) ([]models.CartItem, error)
	AddCartItem(ctx context.Context, req CartItemRequest) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, id int64, quantity int) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, id int64) error
}
