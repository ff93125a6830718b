package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/scribehub/internal/model"
)

var postCols = []string{"id", "account_id", "text", "name", "avatar", "likes", "comments", "created_at"}

func TestPostRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	post := model.NewPost(uuid.New(), model.Account{ID: uuid.New(), Name: "Ann", Avatar: "//a"}, "hello", time.Now().UTC())

	mock.ExpectExec(`(?s)INSERT INTO posts \(id, account_id, text, name, avatar, likes, comments, created_at\).*VALUES`).
		WithArgs(post.ID, post.AccountID, "hello", "Ann", "//a", []byte(`[]`), []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := NewPostRepository(db).Create(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, post, got)
}

func TestPostRepository_List_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	liker := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM posts ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow(uuid.NewString(), uuid.NewString(), "new", "n", "a", []byte(`[{"user":"`+liker.String()+`"}]`), []byte(`[]`), newer).
			AddRow(uuid.NewString(), uuid.NewString(), "old", "n", "a", []byte(`[]`), []byte(`[]`), older))

	got, err := NewPostRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Text)
	assert.Equal(t, []model.Like{{AccountID: liker}}, got[0].Likes)
}

func TestPostRepository_GetByID(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`FROM posts WHERE id = \$1`).WithArgs(id).WillReturnError(sql.ErrNoRows)

		_, err := NewPostRepository(db).GetByID(context.Background(), id)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("found with comments", func(t *testing.T) {
		db, mock := newMockDB(t)
		commentID := uuid.New()
		comments := `[{"_id":"` + commentID.String() + `","user":"` + uuid.NewString() + `","text":"hi","name":"Bob","avatar":"//b","date":"2024-01-01T00:00:00Z"}]`
		mock.ExpectQuery(`FROM posts WHERE id = \$1`).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(postCols).
				AddRow(id.String(), uuid.NewString(), "text", "Ann", "//a", []byte(`[]`), []byte(comments), time.Now()))

		got, err := NewPostRepository(db).GetByID(context.Background(), id)
		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
		assert.Equal(t, commentID, got.Comments[0].ID)
		assert.Equal(t, "Bob", got.Comments[0].Name)
	})
}

func TestPostRepository_Update(t *testing.T) {
	post := model.NewPost(uuid.New(), model.Account{ID: uuid.New()}, "hello", time.Now())
	liker := uuid.New()
	post.Like(liker)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE posts SET text = \$2, likes = \$3, comments = \$4 WHERE id = \$1`).
			WithArgs(post.ID, "hello", []byte(`[{"user":"`+liker.String()+`"}]`), []byte(`[]`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := NewPostRepository(db).Update(context.Background(), post)
		require.NoError(t, err)
	})

	t.Run("vanished", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE posts`).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := NewPostRepository(db).Update(context.Background(), post)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, NewPostRepository(db).Delete(context.Background(), id), model.ErrNotFound)
	})

	t.Run("by account tolerates none", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM posts WHERE account_id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, NewPostRepository(db).DeleteByAccountID(context.Background(), id))
	})

	t.Run("by account error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM posts WHERE account_id = \$1`).WithArgs(id).WillReturnError(assert.AnError)

		require.ErrorIs(t, NewPostRepository(db).DeleteByAccountID(context.Background(), id), assert.AnError)
	})
}

func TestConnection_WithTx(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		conn := &Connection{DB: db}
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM posts WHERE account_id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := conn.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			return NewPostRepository(tx).DeleteByAccountID(ctx, id)
		})
		require.NoError(t, err)
	})

	t.Run("rollback", func(t *testing.T) {
		db, mock := newMockDB(t)
		conn := &Connection{DB: db}

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := conn.WithTx(context.Background(), func(context.Context, DBTX) error {
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestConnection_NilHandle(t *testing.T) {
	conn := &Connection{}

	require.Error(t, conn.Ping(context.Background()))
	require.NoError(t, conn.Close())
}
