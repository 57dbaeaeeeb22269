package services

import (
	"context"
	"errors"

	"github.com/quickticket/quickticket-cli/internal/client/gateway"
	"github.com/quickticket/quickticket-cli/internal/client/models"
)

// ErrInvalidQuantity is returned for non-positive quantities on Add.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartService manages the user's cart. All operations are keyed by the
// session email; callers are expected to hold an active session.
type CartService interface {
	// Items returns the cart lines plus their combined total.
	Items(ctx context.Context, email string) ([]models.CartItem, float64, error)
	Add(ctx context.Context, email string, productID int64, quantity int) (*models.CartItem, error)
	// UpdateQuantity changes a line's quantity; quantity 0 removes the line.
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, itemID int64) error
}

type cartService struct {
	client gateway.Client
}

// NewCartService constructs a CartService bound to the given API client.
func NewCartService(client gateway.Client) CartService {
	return &cartService{client: client}
}

func (s *cartService) Items(ctx context.Context, email string) ([]models.CartItem, float64, error) {
	items, err := s.client.Cart(ctx, email)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}
	return items, total, nil
}

func (s *cartService) Add(ctx context.Context, email string, productID int64, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return s.client.AddCartItem(ctx, gateway.CartItemRequest{
		UserEmail: email,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		if err := s.client.RemoveCartItem(ctx, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return s.client.UpdateCartItem(ctx, itemID, quantity)
}

func (s *cartService) Remove(ctx context.Context, itemID int64) error {
	return s.client.RemoveCartItem(ctx, itemID)
}
