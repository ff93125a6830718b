package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postColumns = `id, account_id, text, name, avatar, likes, comments, created_at`

func scanPost(row scanner) (model.Post, error) {
	var (
		p               model.Post
		likes, comments []byte
	)
	if err := row.Scan(&p.ID, &p.AccountID, &p.Text, &p.Name, &p.Avatar, &likes, &comments, &p.CreatedAt); err != nil {
		return model.Post{}, err
	}
	if err := json.Unmarshal(likes, &p.Likes); err != nil {
		return model.Post{}, fmt.Errorf("failed to decode likes: %w", err)
	}
	if err := json.Unmarshal(comments, &p.Comments); err != nil {
		return model.Post{}, fmt.Errorf("failed to decode comments: %w", err)
	}
	return p, nil
}

func encodePost(p model.Post) (likes, comments []byte, err error) {
	likes, err = json.Marshal(nonNil(p.Likes))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode likes: %w", err)
	}
	comments, err = json.Marshal(nonNil(p.Comments))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode comments: %w", err)
	}
	return likes, comments, nil
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	likes, comments, err := encodePost(post)
	if err != nil {
		return model.Post{}, err
	}

	query := `INSERT INTO posts (` + postColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		post.ID, post.AccountID, post.Text, post.Name, post.Avatar, likes, comments, post.CreatedAt,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Update overwrites text, likes and comments of the stored post.
func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	likes, comments, err := encodePost(post)
	if err != nil {
		return model.Post{}, err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE posts SET text = $2, likes = $3, comments = $4 WHERE id = $1`,
		post.ID, post.Text, likes, comments,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return model.Post{}, err
	}

	return post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return requireAffected(res)
}

// DeleteByAccountID removes every post of the account; having none is not an error.
func (r *PostRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("failed to delete posts of account: %w", err)
	}

	return nil
}
