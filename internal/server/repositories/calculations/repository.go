package calculations

import (
	"context"

	"github.com/dmitrijs2005/calckeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, calc *models.Calculation) (*models.Calculation, error)
	FindByID(ctx context.Context, id int64) (*models.Calculation, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.Calculation, error)
	Update(ctx context.Context, calc *models.Calculation) (*models.Calculation, error)
	Delete(ctx context.Context, id int64) error
}
