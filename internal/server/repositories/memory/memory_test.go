package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/dbx"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repomanager.RepositoryManager = (*RepositoryManager)(nil)
	_ dbx.Transactor                = (*RepositoryManager)(nil)
)

func TestUsersRepository(t *testing.T) {
	ctx := context.Background()
	r := NewUsersRepository()

	_, err := r.FindFirst(ctx)
	require.ErrorIs(t, err, common.ErrorNotFound)

	a, err := r.Create(ctx, &models.User{Email: "a@example.com", HashedPassword: "h", IsActive: true})
	require.NoError(t, err)
	b, err := r.Create(ctx, &models.User{Email: "b@example.com", HashedPassword: "h", IsActive: true})
	require.NoError(t, err)
	assert.Less(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	_, err = r.Create(ctx, &models.User{Email: "a@example.com"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = r.Create(ctx, &models.User{Email: "A@example.com"})
	require.NoError(t, err, "emails are case-sensitive")

	first, err := r.FindFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, first.ID)

	got, err := r.FindByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = r.FindByID(ctx, 999)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUsersRepository_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUsersRepository()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create(ctx, &models.User{Email: "same@example.com"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, common.ErrorAlreadyExists)
		}
	}
	assert.Equal(t, 1, created)
}

func TestCalculationsRepository(t *testing.T) {
	ctx := context.Background()
	r := NewCalculationsRepository()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	c1, err := r.Create(ctx, &models.Calculation{UserID: 1, Operation: "add", Operand1: 2, Operand2: 3, Result: 5, CreatedAt: created})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Calculation{UserID: 2, Operation: "add", Operand1: 1, Operand2: 1, Result: 2})
	require.NoError(t, err)
	c3, err := r.Create(ctx, &models.Calculation{UserID: 1, Operation: "subtract", Operand1: 5, Operand2: 2, Result: 3})
	require.NoError(t, err)

	list, err := r.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []int64{c1.ID, c3.ID}, []int64{list[0].ID, list[1].ID})

	updated, err := r.Update(ctx, &models.Calculation{ID: c1.ID, Operation: "multiply", Operand1: 4, Operand2: 5, Result: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.UserID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, 20.0, updated.Result)

	require.NoError(t, r.Delete(ctx, c1.ID))
	require.ErrorIs(t, r.Delete(ctx, c1.ID), common.ErrorNotFound)
	_, err = r.FindByID(ctx, c1.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.Update(ctx, &models.Calculation{ID: c1.ID})
	require.ErrorIs(t, err, common.ErrorNotFound)

	empty, err := r.ListByOwner(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRepositoryManager_WithTx(t *testing.T) {
	m := NewRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), nil))
	assert.Same(t, m.Users(nil), m.Users(nil))

	called := false
	err := m.WithTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		called = true
		return common.ErrorNotFound
	})
	assert.True(t, called)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
