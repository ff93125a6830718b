package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// FeedService defines post, like and comment operations.
type FeedService interface {
	Create(ctx context.Context, accountID uuid.UUID, text string) (model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, rawPostID string) (model.Post, error)
	Delete(ctx context.Context, accountID uuid.UUID, rawPostID string) error
	Like(ctx context.Context, accountID uuid.UUID, rawPostID string) ([]model.Like, error)
	Unlike(ctx context.Context, accountID uuid.UUID, rawPostID string) ([]model.Like, error)
	AddComment(ctx context.Context, accountID uuid.UUID, rawPostID, text string) ([]model.Comment, error)
	RemoveComment(ctx context.Context, accountID uuid.UUID, rawPostID, commentID string) ([]model.Comment, error)
}

// Post handles feed endpoints. All of them require an authenticated caller.
type Post struct {
	feedService    FeedService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewPost(feedService FeedService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		feedService:    feedService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Post) Create(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req textRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	post, err := h.feedService.Create(c.Request().Context(), accountID, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

func (h *Post) List(c echo.Context) error {
	posts, err := h.feedService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, posts)
}

func (h *Post) Get(c echo.Context) error {
	post, err := h.feedService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

func (h *Post) Delete(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	if err := h.feedService.Delete(c.Request().Context(), accountID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Msg: "Post removed"})
}

func (h *Post) Like(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	likes, err := h.feedService.Like(c.Request().Context(), accountID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, likes)
}

func (h *Post) Unlike(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	likes, err := h.feedService.Unlike(c.Request().Context(), accountID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, likes)
}

func (h *Post) AddComment(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req textRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	comments, err := h.feedService.AddComment(c.Request().Context(), accountID, c.Param("id"), req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}

func (h *Post) RemoveComment(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	comments, err := h.feedService.RemoveComment(c.Request().Context(), accountID, c.Param("id"), c.Param("commentId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}
