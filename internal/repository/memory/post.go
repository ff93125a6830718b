package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *DB
}

func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) Create(_ context.Context, post model.Post) (model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.posts[post.ID]; ok {
		return model.Post{}, model.ErrAlreadyExists
	}
	r.db.posts[post.ID] = post.Clone()
	return post, nil
}

// List returns posts newest first.
func (r *PostRepository) List(_ context.Context) ([]model.Post, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	posts := make([]model.Post, 0, len(r.db.posts))
	for _, p := range r.db.posts {
		posts = append(posts, p.Clone())
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (r *PostRepository) GetByID(_ context.Context, id uuid.UUID) (model.Post, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.posts[id]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *PostRepository) Update(_ context.Context, post model.Post) (model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.posts[post.ID]; !ok {
		return model.Post{}, model.ErrNotFound
	}
	r.db.posts[post.ID] = post.Clone()
	return post, nil
}

func (r *PostRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.posts[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.db.posts, id)
	return nil
}

func (r *PostRepository) DeleteByAccountID(_ context.Context, accountID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, p := range r.db.posts {
		if p.AccountID == accountID {
			delete(r.db.posts, id)
		}
	}
	return nil
}
