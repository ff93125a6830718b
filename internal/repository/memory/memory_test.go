package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/scribehub/internal/model"
)

func newAccount(email string) model.Account {
	return model.Account{
		ID:        uuid.New(),
		Name:      "Writer " + email,
		Email:     email,
		Password:  "hash",
		Avatar:    "//avatar/" + email,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewDB())
	account := newAccount("ann@example.com")

	_, err := repo.Create(ctx, account)
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Create(ctx, newAccount("ann@example.com"))
		require.ErrorIs(t, err, model.ErrAlreadyExists)
	})

	t.Run("lookups", func(t *testing.T) {
		byEmail, err := repo.GetByEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, account, byEmail)

		byID, err := repo.GetByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account, byID)

		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, account.ID))
		require.ErrorIs(t, repo.Delete(ctx, account.ID), model.ErrNotFound)
		_, err := repo.GetByID(ctx, account.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	accounts := NewAccountRepository(db)
	repo := NewProfileRepository(db)

	account := newAccount("ann@example.com")
	_, err := accounts.Create(ctx, account)
	require.NoError(t, err)

	profile := model.NewProfile(uuid.New(), account, account.CreatedAt)
	profile.Genres = []string{"noir"}
	_, err = repo.Create(ctx, profile)
	require.NoError(t, err)

	t.Run("one profile per account", func(t *testing.T) {
		_, err := repo.Create(ctx, model.NewProfile(uuid.New(), account, account.CreatedAt))
		require.ErrorIs(t, err, model.ErrAlreadyExists)
	})

	t.Run("owner is populated", func(t *testing.T) {
		got, err := repo.GetByAccountID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Ref(), got.User)
		assert.Equal(t, []string{"noir"}, got.Genres)
	})

	t.Run("returned copies are isolated", func(t *testing.T) {
		got, err := repo.GetByAccountID(ctx, account.ID)
		require.NoError(t, err)
		got.Genres[0] = "changed"

		again, err := repo.GetByAccountID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "noir", again.Genres[0])
	})

	t.Run("update", func(t *testing.T) {
		profile.Bio = "new bio"
		profile.AddPublication(model.Publication{ID: uuid.New(), Title: "Book"})
		_, err := repo.Update(ctx, profile)
		require.NoError(t, err)

		got, err := repo.GetByAccountID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "new bio", got.Bio)
		assert.Len(t, got.Publications, 1)

		_, err = repo.Update(ctx, model.NewProfile(uuid.New(), newAccount("x@example.com"), time.Now()))
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("list oldest first", func(t *testing.T) {
		other := newAccount("bob@example.com")
		_, err := accounts.Create(ctx, other)
		require.NoError(t, err)
		_, err = repo.Create(ctx, model.NewProfile(uuid.New(), other, account.CreatedAt.Add(time.Hour)))
		require.NoError(t, err)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, account.ID, all[0].User.ID)
		assert.Equal(t, other.ID, all[1].User.ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteByAccountID(ctx, account.ID))
		require.ErrorIs(t, repo.DeleteByAccountID(ctx, account.ID), model.ErrNotFound)
	})
}

func TestPostRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewDB())
	ann, bob := newAccount("ann@example.com"), newAccount("bob@example.com")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := model.NewPost(uuid.New(), ann, "first", base)
	second := model.NewPost(uuid.New(), bob, "second", base.Add(time.Minute))
	third := model.NewPost(uuid.New(), ann, "third", base.Add(2*time.Minute))
	for _, p := range []model.Post{second, first, third} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		posts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, []string{"third", "second", "first"}, []string{posts[0].Text, posts[1].Text, posts[2].Text})
	})

	t.Run("update", func(t *testing.T) {
		first.Like(bob.ID)
		_, err := repo.Update(ctx, first)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, []model.Like{{AccountID: bob.ID}}, got.Likes)
	})

	t.Run("delete by account", func(t *testing.T) {
		require.NoError(t, repo.DeleteByAccountID(ctx, ann.ID))
		posts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, second.ID, posts[0].ID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, first.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = repo.Update(ctx, first)
		require.ErrorIs(t, err, model.ErrNotFound)
		require.ErrorIs(t, repo.Delete(ctx, first.ID), model.ErrNotFound)
	})
}

func TestPostRepository_ConcurrentLikes(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(NewDB())
	post := model.NewPost(uuid.New(), newAccount("ann@example.com"), "text", time.Now())
	_, err := repo.Create(ctx, post)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx)
			_, _ = repo.GetByID(ctx, post.ID)
		}()
	}
	wg.Wait()
}

func TestDB_Ping(t *testing.T) {
	require.NoError(t, NewDB().Ping(context.Background()))
}
