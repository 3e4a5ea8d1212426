package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medialocker-backend-go/internal/models"
	"medialocker-backend-go/internal/testutil"
)

func newTestLockerService(t *testing.T) (LockerService, *testutil.FakeLockerRepository) {
	t.Helper()
	repo := testutil.NewFakeLockerRepository()
	return NewLockerService(repo), repo
}

func seedLocker(repo *testutil.FakeLockerRepository, owner string, collaborators ...string) *models.Locker {
	now := time.Now().UTC()
	l := &models.Locker{
		ID:              "locker-1",
		Name:            models.DefaultLockerName,
		Visibility:      models.VisibilityPrivate,
		Games:           []string{},
		Movies:          []string{},
		Books:           []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       owner,
		OwnerID:         owner,
		UsersWithAccess: collaborators,
	}
	repo.Seed(l)
	return l
}

func TestAuthorizeUser(t *testing.T) {
	locker := &models.Locker{
		OwnerID:         "alice",
		UsersWithAccess: []string{"carol", "dave"},
	}

	assert.True(t, authorizeUser("alice", locker), "owner is always authorized")
	assert.True(t, authorizeUser("carol", locker), "collaborator is authorized")
	assert.True(t, authorizeUser("dave", locker), "collaborator is authorized")
	assert.False(t, authorizeUser("bob", locker), "stranger is not authorized")
	assert.False(t, authorizeUser("", locker), "empty caller is not authorized")
}

func TestAuthorizeUser_OwnerNotInAccessList(t *testing.T) {
	// The owner qualifies even when usersWithAccess is empty.
	locker := &models.Locker{OwnerID: "alice", UsersWithAccess: []string{}}
	assert.True(t, authorizeUser("alice", locker))
}

func TestCreateLocker(t *testing.T) {
	svc, _ := newTestLockerService(t)
	ctx := context.Background()

	locker, err := svc.CreateLocker(ctx, "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, locker.ID)
	assert.Equal(t, models.DefaultLockerName, locker.Name)
	assert.Equal(t, models.VisibilityPrivate, locker.Visibility)
	assert.Equal(t, "alice", locker.OwnerID)
	assert.Equal(t, "alice", locker.CreatedBy)
	assert.Empty(t, locker.Games)
	assert.Empty(t, locker.Movies)
	assert.Empty(t, locker.Books)
	assert.Empty(t, locker.UsersWithAccess)
	assert.Equal(t, locker.CreatedAt, locker.UpdatedAt)
}

func TestCreateLocker_UniqueIDs(t *testing.T) {
	svc, _ := newTestLockerService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		locker, err := svc.CreateLocker(ctx, "alice")
		require.NoError(t, err)
		require.False(t, seen[locker.ID], "locker ID %q was generated twice", locker.ID)
		seen[locker.ID] = true
	}
}

func TestGetLockerByID(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice", "carol")

	t.Run("owner can read", func(t *testing.T) {
		locker, err := svc.GetLockerByID(ctx, "alice", "locker-1")
		require.NoError(t, err)
		assert.Equal(t, "locker-1", locker.ID)
	})

	t.Run("collaborator can read", func(t *testing.T) {
		_, err := svc.GetLockerByID(ctx, "carol", "locker-1")
		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		_, err := svc.GetLockerByID(ctx, "bob", "locker-1")
		assert.ErrorIs(t, err, ErrForbiddenAccess)
	})

	t.Run("missing locker is not found, not forbidden", func(t *testing.T) {
		_, err := svc.GetLockerByID(ctx, "bob", "no-such-locker")
		assert.ErrorIs(t, err, ErrLockerNotFound)
		assert.NotErrorIs(t, err, ErrForbiddenAccess)
	})
}

func TestAddItem(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice")

	updated, err := svc.AddItem(ctx, "alice", "locker-1", models.KindGame, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, updated.Games)

	// Duplicates are permitted: the sequence is append-only, not a set.
	updated, err = svc.AddItem(ctx, "alice", "locker-1", models.KindGame, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g1"}, updated.Games)

	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestAddItem_AllKinds(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice")

	for _, kind := range []models.ItemKind{models.KindGame, models.KindMovie, models.KindBook} {
		updated, err := svc.AddItem(ctx, "alice", "locker-1", kind, "item-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"item-1"}, kind.Items(updated))
	}
}

func TestAddItem_InvalidKind(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice")

	_, err := svc.AddItem(ctx, "alice", "locker-1", models.ItemKind("vinyl"), "v1")
	assert.ErrorIs(t, err, ErrInvalidItemKind)
	assert.Zero(t, repo.Mutations)
}

func TestRemoveItem_RoundTrip(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice")

	_, err := svc.AddItem(ctx, "alice", "locker-1", models.KindMovie, "m1")
	require.NoError(t, err)

	updated, err := svc.RemoveItem(ctx, "alice", "locker-1", models.KindMovie, "m1")
	require.NoError(t, err)
	assert.Empty(t, updated.Movies, "add then remove restores the prior sequence")
}

func TestRemoveItem_MultisetSemantics(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice")

	for _, id := range []string{"g1", "g2", "g1"} {
		_, err := svc.AddItem(ctx, "alice", "locker-1", models.KindGame, id)
		require.NoError(t, err)
	}

	// Removal-by-value removes every occurrence, not a single instance.
	updated, err := svc.RemoveItem(ctx, "alice", "locker-1", models.KindGame, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g2"}, updated.Games)
}

func TestRemoveItem_AbsentValueIsNoOp(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seeded := seedLocker(repo, "alice")

	updated, err := svc.RemoveItem(ctx, "alice", "locker-1", models.KindBook, "never-added")
	require.NoError(t, err, "removing an absent item is not an error")
	assert.Empty(t, updated.Books)
	assert.True(t, updated.UpdatedAt.After(seeded.UpdatedAt), "the no-op still advances updatedAt")
}

func TestRemoveItem_Idempotent(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice")

	_, err := svc.AddItem(ctx, "alice", "locker-1", models.KindGame, "g1")
	require.NoError(t, err)

	first, err := svc.RemoveItem(ctx, "alice", "locker-1", models.KindGame, "g1")
	require.NoError(t, err)
	second, err := svc.RemoveItem(ctx, "alice", "locker-1", models.KindGame, "g1")
	require.NoError(t, err)

	assert.Equal(t, first.Games, second.Games, "removing twice yields the same sequence as removing once")
}

func TestMutations_UnauthorizedCallerNeverMutates(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice", "carol")

	_, err := svc.AddItem(ctx, "bob", "locker-1", models.KindGame, "g1")
	assert.ErrorIs(t, err, ErrForbiddenAccess)

	_, err = svc.RemoveItem(ctx, "bob", "locker-1", models.KindGame, "g1")
	assert.ErrorIs(t, err, ErrForbiddenAccess)

	_, err = svc.DeleteLocker(ctx, "bob", "locker-1")
	assert.ErrorIs(t, err, ErrForbiddenAccess)

	assert.Zero(t, repo.Mutations, "denied operations must never reach the store")
	snapshot := repo.Snapshot("locker-1")
	require.NotNil(t, snapshot, "locker must still be present after denied delete")
	assert.Empty(t, snapshot.Games)
}

func TestDeleteLocker(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice", "carol")

	t.Run("collaborator may delete", func(t *testing.T) {
		deleted, err := svc.DeleteLocker(ctx, "carol", "locker-1")
		require.NoError(t, err)
		assert.Equal(t, "locker-1", deleted.ID)
		assert.Nil(t, repo.Snapshot("locker-1"))
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		_, err := svc.DeleteLocker(ctx, "alice", "locker-1")
		assert.ErrorIs(t, err, ErrLockerNotFound)
	})
}

func TestListByOwner(t *testing.T) {
	svc, repo := newTestLockerService(t)
	ctx := context.Background()
	seedLocker(repo, "alice", "carol")

	t.Run("owner lists own lockers", func(t *testing.T) {
		lockers, err := svc.ListByOwner(ctx, "alice", "alice")
		require.NoError(t, err)
		require.Len(t, lockers, 1)
		assert.Equal(t, "locker-1", lockers[0].ID)
	})

	t.Run("collaborator access does not grant listing", func(t *testing.T) {
		// carol is in usersWithAccess of alice's locker, but listing is
		// strictly owner-scoped.
		_, err := svc.ListByOwner(ctx, "carol", "alice")
		assert.ErrorIs(t, err, ErrForbiddenAccess)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		_, err := svc.ListByOwner(ctx, "bob", "alice")
		assert.ErrorIs(t, err, ErrForbiddenAccess)
	})
}
