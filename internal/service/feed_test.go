package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/scribehub/internal/mocks"
	"github.com/dtroode/scribehub/internal/model"
	"github.com/dtroode/scribehub/internal/testutil"
)

func newTestFeed(t *testing.T) (*Feed, *servermocks.PostStore, *servermocks.AccountStore) {
	t.Helper()

	posts := servermocks.NewPostStore(t)
	accounts := servermocks.NewAccountStore(t)
	return NewFeed(posts, accounts, testutil.MakeStubClock(), testutil.MakeNoopLogger()), posts, accounts
}

func passPost(_ context.Context, p model.Post) model.Post { return p }

func TestFeed_Create(t *testing.T) {
	f, posts, accounts := newTestFeed(t)
	author := model.Account{ID: uuid.New(), Name: "Ann", Avatar: "//a"}

	accounts.On("GetByID", mock.Anything, author.ID).Return(author, nil).Once()
	posts.On("Create", mock.Anything, mock.Anything).Return(passPost, nil).Once()

	post, err := f.Create(context.Background(), author.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Text)
	assert.Equal(t, "Ann", post.Name)
	assert.Equal(t, "//a", post.Avatar)
	assert.Equal(t, author.ID, post.AccountID)
	assert.Equal(t, testutil.FixedTime, post.CreatedAt)
	assert.Empty(t, post.Likes)
}

func TestFeed_Create_EmptyText(t *testing.T) {
	f, _, _ := newTestFeed(t)

	_, err := f.Create(context.Background(), uuid.New(), "   ")
	requireAPIError(t, err, 400, "validation failed")
}

func TestFeed_Get(t *testing.T) {
	id := uuid.New()

	t.Run("malformed id", func(t *testing.T) {
		f, _, _ := newTestFeed(t)
		_, err := f.Get(context.Background(), "xyz")
		requireAPIError(t, err, 404, "Post not found")
	})

	t.Run("missing", func(t *testing.T) {
		f, posts, _ := newTestFeed(t)
		posts.On("GetByID", mock.Anything, id).Return(model.Post{}, model.ErrNotFound).Once()

		_, err := f.Get(context.Background(), id.String())
		requireAPIError(t, err, 404, "Post not found")
	})

	t.Run("store failure", func(t *testing.T) {
		f, posts, _ := newTestFeed(t)
		posts.On("GetByID", mock.Anything, id).Return(model.Post{}, assert.AnError).Once()

		_, err := f.Get(context.Background(), id.String())
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestFeed_Delete(t *testing.T) {
	author := uuid.New()
	post := model.NewPost(uuid.New(), model.Account{ID: author}, "hi", time.Time{})

	t.Run("author deletes", func(t *testing.T) {
		f, posts, _ := newTestFeed(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil).Once()
		posts.On("Delete", mock.Anything, post.ID).Return(nil).Once()

		require.NoError(t, f.Delete(context.Background(), author, post.ID.String()))
	})

	t.Run("non-author is forbidden and post remains", func(t *testing.T) {
		f, posts, _ := newTestFeed(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil).Once()

		err := f.Delete(context.Background(), uuid.New(), post.ID.String())
		requireAPIError(t, err, 403, "User not authorized")
		posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestFeed_LikeUnlike(t *testing.T) {
	ctx := context.Background()
	liker := uuid.New()
	post := model.NewPost(uuid.New(), model.Account{ID: uuid.New()}, "hi", time.Time{})

	f, posts, _ := newTestFeed(t)
	posts.On("GetByID", mock.Anything, post.ID).Return(func(context.Context, uuid.UUID) (model.Post, error) {
		return post.Clone(), nil
	})
	posts.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, p model.Post) (model.Post, error) {
		post = p.Clone()
		return p, nil
	})

	likes, err := f.Like(ctx, liker, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []model.Like{{AccountID: liker}}, likes)

	_, err = f.Like(ctx, liker, post.ID.String())
	requireAPIError(t, err, 400, "Post already liked")
	assert.Len(t, post.Likes, 1)

	other := uuid.New()
	likes, err = f.Like(ctx, other, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, other, likes[0].AccountID)

	likes, err = f.Unlike(ctx, liker, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []model.Like{{AccountID: other}}, likes)

	_, err = f.Unlike(ctx, liker, post.ID.String())
	requireAPIError(t, err, 400, "Post has not yet been liked")
}

func TestFeed_Comments(t *testing.T) {
	ctx := context.Background()
	commenter := model.Account{ID: uuid.New(), Name: "Bob", Avatar: "//b"}
	post := model.NewPost(uuid.New(), model.Account{ID: uuid.New()}, "hi", time.Time{})

	f, posts, accounts := newTestFeed(t)
	accounts.On("GetByID", mock.Anything, commenter.ID).Return(commenter, nil)
	posts.On("GetByID", mock.Anything, post.ID).Return(func(context.Context, uuid.UUID) (model.Post, error) {
		return post.Clone(), nil
	})
	posts.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, p model.Post) (model.Post, error) {
		post = p.Clone()
		return p, nil
	})

	_, err := f.AddComment(ctx, commenter.ID, post.ID.String(), "first")
	require.NoError(t, err)
	comments, err := f.AddComment(ctx, commenter.ID, post.ID.String(), "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "Bob", comments[0].Name)
	assert.Equal(t, "//b", comments[0].Avatar)

	_, err = f.RemoveComment(ctx, uuid.New(), post.ID.String(), comments[0].ID.String())
	requireAPIError(t, err, 403, "User not authorized")

	_, err = f.RemoveComment(ctx, commenter.ID, post.ID.String(), uuid.NewString())
	requireAPIError(t, err, 404, "Comment does not exist")

	comments, err = f.RemoveComment(ctx, commenter.ID, post.ID.String(), comments[0].ID.String())
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "first", comments[0].Text)
}

func TestFeed_AddComment_EmptyText(t *testing.T) {
	f, _, _ := newTestFeed(t)

	_, err := f.AddComment(context.Background(), uuid.New(), uuid.NewString(), "")
	requireAPIError(t, err, 400, "validation failed")
}

func TestFeed_List(t *testing.T) {
	f, posts, _ := newTestFeed(t)
	posts.On("List", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := f.List(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}
