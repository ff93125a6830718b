package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/clock"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// Feed manages posts, likes and comments.
type Feed struct {
	postStore    model.PostStore
	accountStore model.AccountStore
	clock        clock.Clock
	logger       *logger.Logger
}

func NewFeed(postStore model.PostStore, accountStore model.AccountStore, clock clock.Clock, logger *logger.Logger) *Feed {
	return &Feed{
		postStore:    postStore,
		accountStore: accountStore,
		clock:        clock,
		logger:       logger,
	}
}

// Create publishes a post with a snapshot of the author's name and avatar.
func (f *Feed) Create(ctx context.Context, accountID uuid.UUID, text string) (model.Post, error) {
	if strings.TrimSpace(text) == "" {
		return model.Post{}, errTextRequired()
	}

	author, err := f.author(ctx, accountID)
	if err != nil {
		return model.Post{}, err
	}

	post, err := f.postStore.Create(ctx, model.NewPost(uuid.New(), author, text, f.clock.NowUtc()))
	if err != nil {
		f.logger.Error("Feed service: failed to create post",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	f.logger.Info("Feed service: post created",
		"account_id", accountID.String(),
		"post_id", post.ID.String())

	return post, nil
}

// List returns all posts, newest first.
func (f *Feed) List(ctx context.Context) ([]model.Post, error) {
	posts, err := f.postStore.List(ctx)
	if err != nil {
		f.logger.Error("Feed service: failed to list posts",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Get returns a post. A malformed id is reported as a missing post.
func (f *Feed) Get(ctx context.Context, rawPostID string) (model.Post, error) {
	return f.load(ctx, rawPostID)
}

// Delete removes a post owned by the caller.
func (f *Feed) Delete(ctx context.Context, accountID uuid.UUID, rawPostID string) error {
	post, err := f.load(ctx, rawPostID)
	if err != nil {
		return err
	}

	if post.AccountID != accountID {
		f.logger.Info("Feed service: refused to delete foreign post",
			"account_id", accountID.String(),
			"post_id", post.ID.String())
		return apiErrors.NewErrForbidden()
	}

	err = f.postStore.Delete(ctx, post.ID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrPostNotFound()
	}
	if err != nil {
		f.logger.Error("Feed service: failed to delete post",
			"post_id", post.ID.String(),
			"error", err.Error())
		return fmt.Errorf("failed to delete post: %w", err)
	}

	f.logger.Info("Feed service: post deleted",
		"account_id", accountID.String(),
		"post_id", post.ID.String())

	return nil
}

// Like records the caller's like. Liking twice fails.
func (f *Feed) Like(ctx context.Context, accountID uuid.UUID, rawPostID string) ([]model.Like, error) {
	post, err := f.load(ctx, rawPostID)
	if err != nil {
		return nil, err
	}

	if post.LikeIndex(accountID) != -1 {
		return nil, apiErrors.NewErrAlreadyLiked()
	}
	post.Like(accountID)

	post, err = f.save(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Likes, nil
}

// Unlike removes the caller's like. It fails when there is none.
func (f *Feed) Unlike(ctx context.Context, accountID uuid.UUID, rawPostID string) ([]model.Like, error) {
	post, err := f.load(ctx, rawPostID)
	if err != nil {
		return nil, err
	}

	idx := post.LikeIndex(accountID)
	if idx == -1 {
		return nil, apiErrors.NewErrNotLiked()
	}
	post.Unlike(idx)

	post, err = f.save(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Likes, nil
}

// AddComment inserts the caller's comment first and returns all comments.
func (f *Feed) AddComment(ctx context.Context, accountID uuid.UUID, rawPostID, text string) ([]model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errTextRequired()
	}

	post, err := f.load(ctx, rawPostID)
	if err != nil {
		return nil, err
	}

	author, err := f.author(ctx, accountID)
	if err != nil {
		return nil, err
	}

	post.AddComment(model.NewComment(uuid.New(), author, text, f.clock.NowUtc()))

	post, err = f.save(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Comments, nil
}

// RemoveComment deletes a comment written by the caller.
func (f *Feed) RemoveComment(ctx context.Context, accountID uuid.UUID, rawPostID, commentID string) ([]model.Comment, error) {
	post, err := f.load(ctx, rawPostID)
	if err != nil {
		return nil, err
	}

	idx := post.CommentIndex(commentID)
	if idx == -1 {
		return nil, apiErrors.NewErrCommentNotFound()
	}
	if post.Comments[idx].AccountID != accountID {
		f.logger.Info("Feed service: refused to delete foreign comment",
			"account_id", accountID.String(),
			"post_id", post.ID.String(),
			"comment_id", commentID)
		return nil, apiErrors.NewErrForbidden()
	}
	post.RemoveComment(idx)

	post, err = f.save(ctx, post)
	if err != nil {
		return nil, err
	}

	return post.Comments, nil
}

func (f *Feed) load(ctx context.Context, rawPostID string) (model.Post, error) {
	postID, err := uuid.Parse(rawPostID)
	if err != nil {
		return model.Post{}, apiErrors.NewErrPostNotFound()
	}

	post, err := f.postStore.GetByID(ctx, postID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apiErrors.NewErrPostNotFound()
	}
	if err != nil {
		f.logger.Error("Feed service: failed to get post",
			"post_id", rawPostID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (f *Feed) save(ctx context.Context, post model.Post) (model.Post, error) {
	updated, err := f.postStore.Update(ctx, post)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apiErrors.NewErrPostNotFound()
	}
	if err != nil {
		f.logger.Error("Feed service: failed to update post",
			"post_id", post.ID.String(),
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (f *Feed) author(ctx context.Context, accountID uuid.UUID) (model.Account, error) {
	account, err := f.accountStore.GetByID(ctx, accountID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, apiErrors.NewErrAccountNotFound()
	}
	if err != nil {
		f.logger.Error("Feed service: failed to get author",
			"account_id", accountID.String(),
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func errTextRequired() error {
	return apiErrors.NewErrValidation(apiErrors.FieldError{Msg: "Text is required", Param: "text"})
}
