package users

import (
	"context"

	"github.com/dmitrijs2005/calckeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindFirst returns the user with the lowest id.
	FindFirst(ctx context.Context) (*models.User, error)
}
