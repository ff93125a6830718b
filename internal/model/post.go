package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	// List returns all posts, newest first.
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
}

// Post is a feed entry. Name and Avatar are copied from the author at creation.
type Post struct {
	ID        uuid.UUID `json:"_id"`
	AccountID uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// Like marks a post as liked by an account.
type Like struct {
	AccountID uuid.UUID `json:"user"`
}

// Comment is a reply on a post with a snapshot of its author.
type Comment struct {
	ID        uuid.UUID `json:"_id"`
	AccountID uuid.UUID `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Clone returns a deep copy of the post.
func (p Post) Clone() Post {
	c := p
	c.Likes = cloneSlice(p.Likes)
	c.Comments = cloneSlice(p.Comments)
	return c
}

// LikeIndex returns the position of the account's like, or -1.
func (p Post) LikeIndex(accountID uuid.UUID) int {
	for i, l := range p.Likes {
		if l.AccountID == accountID {
			return i
		}
	}
	return -1
}

// CommentIndex returns the position of the comment with the given id, or -1.
func (p Post) CommentIndex(commentID string) int {
	for i, c := range p.Comments {
		if c.ID.String() == commentID {
			return i
		}
	}
	return -1
}

// Like records a like at the head of the list.
func (p *Post) Like(accountID uuid.UUID) {
	p.Likes = prepend(p.Likes, Like{AccountID: accountID})
}

// Unlike removes the like at position i.
func (p *Post) Unlike(i int) {
	p.Likes = removeAt(p.Likes, i)
}

// AddComment inserts the comment at the head of the list.
func (p *Post) AddComment(c Comment) {
	p.Comments = prepend(p.Comments, c)
}

// RemoveComment removes the comment at position i.
func (p *Post) RemoveComment(i int) {
	p.Comments = removeAt(p.Comments, i)
}

// NewPost returns a post with a snapshot of the author's name and avatar.
func NewPost(id uuid.UUID, author Account, text string, createdAt time.Time) Post {
	return Post{
		ID:        id,
		AccountID: author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: createdAt,
	}
}

// NewComment returns a comment with a snapshot of the author's name and avatar.
func NewComment(id uuid.UUID, author Account, text string, createdAt time.Time) Comment {
	return Comment{
		ID:        id,
		AccountID: author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: createdAt,
	}
}
