package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickticket/quickticket-cli/internal/client/gateway"
	"github.com/quickticket/quickticket-cli/internal/client/models"
)

// fakeClient implements gateway.Client for the service tests. Only the
// cart and product methods carry behavior; the rest are inert.
type fakeClient struct {
	cartItems []models.CartItem
	cartErr   error

	addedReq    gateway.CartItemRequest
	updatedID   int64
	updatedQty  int
	removedID   int64
	removeCalls int
	updateCalls int
	addCalls    int

	products []models.Product
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Register(ctx context.Context, req gateway.RegisterRequest) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) TicketStatus(ctx context.Context, email string) (*gateway.TicketStatus, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) ClaimTicket(ctx context.Context, email string) (*gateway.TicketStatus, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) Products(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeClient) Product(ctx context.Context, id int64) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &gateway.StatusError{Code: 404}
}

func (f *fakeClient) Cart(ctx context.Context, email string) ([]models.CartItem, error) {
	return f.cartItems, f.cartErr
}

func (f *fakeClient) AddCartItem(ctx context.Context, req gateway.CartItemRequest) (*models.CartItem, error) {
	f.addCalls++
	f.addedReq = req
	return &models.CartItem{
		ID: 1, UserEmail: req.UserEmail, ProductID: req.ProductID, Quantity: req.Quantity,
	}, nil
}

func (f *fakeClient) UpdateCartItem(ctx context.Context, id int64, quantity int) (*models.CartItem, error) {
	f.updateCalls++
	f.updatedID = id
	f.updatedQty = quantity
	return &models.CartItem{ID: id, Quantity: quantity}, nil
}

func (f *fakeClient) RemoveCartItem(ctx context.Context, id int64) error {
	f.removeCalls++
	f.removedID = id
	return nil
}

func TestCartItems_SumsLineTotals(t *testing.T) {
	fc := &fakeClient{cartItems: []models.CartItem{
		{ID: 1, ProductName: "Empanada", Quantity: 2, UnitPrice: 1.5, TotalPrice: 3.0},
		{ID: 2, ProductName: "Coffee", Quantity: 1, UnitPrice: 2.25, TotalPrice: 2.25},
	}}
	svc := NewCartService(fc)

	items, total, err := svc.Items(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.InDelta(t, 5.25, total, 1e-9)
}

func TestCartItems_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	svc := NewCartService(&fakeClient{cartErr: wantErr})

	_, _, err := svc.Items(context.Background(), "a@b.c")
	require.ErrorIs(t, err, wantErr)
}

func TestCartAdd_RejectsNonPositiveQuantity(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCartService(fc)

	for _, qty := range []int{0, -3} {
		_, err := svc.Add(context.Background(), "a@b.c", 1, qty)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Equal(t, 0, fc.addCalls)
}

func TestCartAdd_ForwardsRequest(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCartService(fc)

	item, err := svc.Add(context.Background(), "a@b.c", 42, 2)
	require.NoError(t, err)
	assert.Equal(t, gateway.CartItemRequest{UserEmail: "a@b.c", ProductID: 42, Quantity: 2}, fc.addedReq)
	assert.Equal(t, int64(42), item.ProductID)
}

func TestCartUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCartService(fc)

	item, err := svc.UpdateQuantity(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.Equal(t, 1, fc.removeCalls)
	assert.Equal(t, int64(7), fc.removedID)
	assert.Equal(t, 0, fc.updateCalls)
}

func TestCartUpdateQuantity_PositiveUpdates(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCartService(fc)

	item, err := svc.UpdateQuantity(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), fc.updatedID)
	assert.Equal(t, 3, fc.updatedQty)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartUpdateQuantity_NegativeRejected(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCartService(fc)

	_, err := svc.UpdateQuantity(context.Background(), 7, -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 0, fc.removeCalls)
	assert.Equal(t, 0, fc.updateCalls)
}

func TestCartRemove_Forwards(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCartService(fc)

	require.NoError(t, svc.Remove(context.Background(), 9))
	assert.Equal(t, int64(9), fc.removedID)
}
