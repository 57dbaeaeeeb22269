// Package services contains application services for the QuickTicket CLI:
// the product catalog and the shopping cart. Both are thin layers over the
// backend gateway; the session state machine lives in the session package.
package services

import (
	"context"

	"github.com/quickticket/quickticket-cli/internal/client/gateway"
	"github.com/quickticket/quickticket-cli/internal/client/models"
)

// CatalogService exposes the product catalog.
type CatalogService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
}

type catalogService struct {
	client gateway.Client
}

// NewCatalogService constructs a CatalogService bound to the given API client.
func NewCatalogService(client gateway.Client) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.client.Products(ctx)
}

func (s *catalogService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.client.Product(ctx, id)
}
