package client

import (
	"context"

	"github.com/dmitrijs2005/calckeeper/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) error
	Logout()
	LoggedIn() bool
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]*models.Calculation, error)
	Get(ctx context.Context, id int64) (*models.Calculation, error)
	Create(ctx context.Context, in models.CalculationInput) (*models.Calculation, error)
	Update(ctx context.Context, id int64, in models.CalculationInput) (*models.Calculation, error)
	Delete(ctx context.Context, id int64) error
}
