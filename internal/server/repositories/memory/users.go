package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
)

type UsersRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.User
}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{byID: make(map[int64]models.User)}
}

func (r *UsersRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.byID[user.ID] = *user

	return user, nil
}

func (r *UsersRepository) FindByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *UsersRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UsersRepository) FindFirst(_ context.Context) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var first *models.User
	for _, u := range r.byID {
		if first == nil || u.ID < first.ID {
			u := u
			first = &u
		}
	}
	if first == nil {
		return nil, common.ErrorNotFound
	}
	return first, nil
}
