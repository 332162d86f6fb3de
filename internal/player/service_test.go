package player

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/testing/fakes"
)

func input(name string) domain.PlayerInput {
	return domain.PlayerInput{Name: name, Strength: 5, HP: 10, MaxHP: 10, InventoryID: 1}
}

func TestAdd_DuplicateNameRejected(t *testing.T) {
	ctx := context.Background()
	repo := fakes.NewPlayers()
	svc := NewService(repo)

	_, err := svc.Add(ctx, input("Aria"))
	require.NoError(t, err)

	_, err = svc.Add(ctx, input("Aria"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	assert.Equal(t, 1, repo.Len(), "no second row")
	assert.Equal(t, 1, repo.Calls("Add"), "repository add skipped on duplicate")
}

func TestAdd_NormalizesName(t *testing.T) {
	ctx := context.Background()
	svc := NewService(fakes.NewPlayers())

	created, err := svc.Add(ctx, input("  Amélie "))
	require.NoError(t, err)
	assert.Equal(t, "Amélie", created.Name)

	_, err = svc.Add(ctx, input("Amélie"))
	assert.ErrorIs(t, err, domain.ErrDuplicateName, "equivalent spellings collide")

	found, err := svc.GetByName(ctx, " Amélie")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestAdd_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(fakes.NewPlayers())

	created, err := svc.Add(ctx, input("Bran"))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetAll_SortedByName(t *testing.T) {
	ctx := context.Background()
	svc := NewService(fakes.NewPlayers())

	for _, name := range []string{"Zed", "Ann", "Mid"} {
		_, err := svc.Add(ctx, input(name))
		require.NoError(t, err)
	}

	players, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "Ann", players[0].Name)
	assert.Equal(t, "Mid", players[1].Name)
	assert.Equal(t, "Zed", players[2].Name)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing player", func(t *testing.T) {
		repo := fakes.NewPlayers()
		svc := NewService(repo)

		_, err := svc.Update(ctx, uuid.New(), input("Ghost"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, 0, repo.Calls("Update"))
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("replaces all fields", func(t *testing.T) {
		svc := NewService(fakes.NewPlayers())
		created, err := svc.Add(ctx, input("Cora"))
		require.NoError(t, err)

		next := domain.PlayerInput{Name: "Cora", Strength: 9, HP: 3, MaxHP: 20, InventoryID: 2}
		updated, err := svc.Update(ctx, created.ID, next)
		require.NoError(t, err)
		assert.Equal(t, domain.Player{ID: created.ID, Name: "Cora", Strength: 9, HP: 3, MaxHP: 20, InventoryID: 2}, *updated)
	})

	t.Run("rename onto taken name", func(t *testing.T) {
		svc := NewService(fakes.NewPlayers())
		_, err := svc.Add(ctx, input("Dax"))
		require.NoError(t, err)
		eli, err := svc.Add(ctx, input("Eli"))
		require.NoError(t, err)

		_, err = svc.Update(ctx, eli.ID, input("Dax"))
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing player", func(t *testing.T) {
		repo := fakes.NewPlayers()
		svc := NewService(repo)

		deleted, err := svc.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, deleted)
		assert.Equal(t, 0, repo.Calls("Delete"))
	})

	t.Run("second delete is not found", func(t *testing.T) {
		svc := NewService(fakes.NewPlayers())
		created, err := svc.Add(ctx, input("Fin"))
		require.NoError(t, err)

		deleted, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, deleted)
	})
}

func TestStorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storageErr := errors.New("connection refused")
	repo := fakes.NewPlayers()
	repo.Err = storageErr
	svc := NewService(repo)

	_, err := svc.Add(ctx, input("Gus"))
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, domain.ErrDuplicateName)

	_, err = svc.Update(ctx, uuid.New(), input("Gus"))
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, storageErr)
}

// Without a storage-level constraint the check-then-insert sequence is not
// atomic: when both lookups finish before either insert, both adds succeed.
// The postgres repository closes this with a unique index; see
// TestPlayerRepository_ConcurrentDuplicateAdds.
func TestAdd_ConcurrentDuplicatesWithoutConstraint(t *testing.T) {
	ctx := context.Background()
	repo := fakes.NewPlayers()
	svc := NewService(repo)

	var lookups sync.WaitGroup
	lookups.Add(2)
	repo.OnLookup = func() {
		lookups.Done()
		lookups.Wait()
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Add(ctx, input("Aria"))
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 2, repo.Len(), "both rows created: the race the unique index prevents")
}
