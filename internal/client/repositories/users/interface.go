// Package users caches accounts registered from this device so the client
// can reject a duplicate registration before going to the network.
package users

import (
	"context"

	"github.com/quickticket/quickticket-cli/internal/client/models"
)

type Repository interface {
	CountByEmail(ctx context.Context, email string) (int, error)
	Insert(ctx context.Context, user models.LocalUser) (int64, error)
}
