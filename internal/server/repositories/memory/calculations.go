package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
)

type CalculationsRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.Calculation
}

func NewCalculationsRepository() *CalculationsRepository {
	return &CalculationsRepository{byID: make(map[int64]models.Calculation)}
}

func (r *CalculationsRepository) Create(_ context.Context, calc *models.Calculation) (*models.Calculation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	calc.ID = r.nextID
	r.byID[calc.ID] = *calc
	return calc, nil
}

func (r *CalculationsRepository) FindByID(_ context.Context, id int64) (*models.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (r *CalculationsRepository) ListByOwner(_ context.Context, userID int64) ([]*models.Calculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Calculation, 0)
	for _, c := range r.byID {
		if c.UserID == userID {
			c := c
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *CalculationsRepository) Update(_ context.Context, calc *models.Calculation) (*models.Calculation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[calc.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	stored.Operation = calc.Operation
	stored.Operand1 = calc.Operand1
	stored.Operand2 = calc.Operand2
	stored.Result = calc.Result
	r.byID[calc.ID] = stored

	*calc = stored
	return calc, nil
}

func (r *CalculationsRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
