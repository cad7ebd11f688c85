package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/dbx"
	"github.com/dmitrijs2005/calckeeper/internal/server/calc"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/repomanager"
)

// CalculationInput is the caller-supplied part of a calculation.
type CalculationInput struct {
	Operation string
	Operand1  float64
	Operand2  float64
}

// CalculationService runs BREAD over one owner's calculations. Records of
// other owners are reported as common.ErrorNotFound.
type CalculationService struct {
	db          dbx.DBTX
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCalculationService(db dbx.DBTX, tx dbx.Transactor, m repomanager.RepositoryManager) *CalculationService {
	return &CalculationService{
		db:          db,
		tx:          tx,
		repomanager: m,
		now:         time.Now,
	}
}

func (s *CalculationService) List(ctx context.Context, userID int64) ([]*models.Calculation, error) {
	calcs, err := s.repomanager.Calculations(s.db).ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing calculations: %w", err)
	}
	return calcs, nil
}

func (s *CalculationService) Get(ctx context.Context, userID, id int64) (*models.Calculation, error) {
	c, err := s.repomanager.Calculations(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

// Create evaluates in and stores the result. Evaluation failures are
// returned as the calc package's sentinels and nothing is stored.
func (s *CalculationService) Create(ctx context.Context, userID int64, in CalculationInput) (*models.Calculation, error) {
	op, result, err := calc.EvaluateNamed(in.Operation, in.Operand1, in.Operand2)
	if err != nil {
		return nil, err
	}

	c, err := s.repomanager.Calculations(s.db).Create(ctx, &models.Calculation{
		UserID:    userID,
		Operation: op.String(),
		Operand1:  in.Operand1,
		Operand2:  in.Operand2,
		Result:    result,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating calculation: %w", err)
	}

	return c, nil
}

// Update replaces operation, operands and result together. The new values
// are evaluated before the record is touched.
func (s *CalculationService) Update(ctx context.Context, userID, id int64, in CalculationInput) (*models.Calculation, error) {
	op, result, err := calc.EvaluateNamed(in.Operation, in.Operand1, in.Operand2)
	if err != nil {
		return nil, err
	}

	var updated *models.Calculation

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Calculations(tx)

		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if c.UserID != userID {
			return common.ErrorNotFound
		}

		c.Operation = op.String()
		c.Operand1 = in.Operand1
		c.Operand2 = in.Operand2
		c.Result = result

		updated, err = repo.Update(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *CalculationService) Delete(ctx context.Context, userID, id int64) error {
	return s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Calculations(tx)

		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if c.UserID != userID {
			return common.ErrorNotFound
		}

		return repo.Delete(ctx, id)
	})
}
