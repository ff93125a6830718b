package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/api/http/validate"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
)

// ProfileService defines profile editing operations.
type ProfileService interface {
	Upsert(ctx context.Context, accountID uuid.UUID, patch model.ProfilePatch) (model.Profile, error)
	AddPublication(ctx context.Context, accountID uuid.UUID, item model.Publication) (model.Profile, error)
	AddCareer(ctx context.Context, accountID uuid.UUID, item model.Career) (model.Profile, error)
	AddEducation(ctx context.Context, accountID uuid.UUID, item model.Education) (model.Profile, error)
	RemoveSubItem(ctx context.Context, accountID uuid.UUID, kind model.SubItemKind, subID string) (model.Profile, error)
	Mine(ctx context.Context, accountID uuid.UUID) (model.Profile, error)
	ByAccount(ctx context.Context, rawAccountID string) (model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
}

// RepoService looks up public repositories of an upstream user.
type RepoService interface {
	List(ctx context.Context, username string) (json.RawMessage, error)
}

// Profile handles profile endpoints.
type Profile struct {
	profileService ProfileService
	repoService    RepoService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewProfile(profileService ProfileService, repoService RepoService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		repoService:    repoService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Profile) Mine(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	profile, err := h.profileService.Mine(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *Profile) List(c echo.Context) error {
	profiles, err := h.profileService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profiles)
}

func (h *Profile) ByAccount(c echo.Context) error {
	profile, err := h.profileService.ByAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// Upsert creates the caller's profile or merges the supplied fields into it.
func (h *Profile) Upsert(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.profileService.Upsert(c.Request().Context(), accountID, model.NewProfilePatch(req.input()))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *Profile) AddPublication(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req publicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	published, err := validate.ParseDate(req.PublicationDate)
	if err != nil {
		return apiErrors.NewErrValidation(apiErrors.FieldError{Msg: "Publication date is required", Param: "publicationDate"})
	}

	profile, err := h.profileService.AddPublication(c.Request().Context(), accountID, model.Publication{
		Title:           req.Title,
		Publisher:       req.Publisher,
		PublicationDate: published,
		Description:     req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *Profile) AddCareer(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req careerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return err
	}

	profile, err := h.profileService.AddCareer(c.Request().Context(), accountID, model.Career{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Website:     req.Website,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *Profile) AddEducation(c echo.Context) error {
	accountID, err := currentAccountID(c, h.contextManager)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return err
	}

	profile, err := h.profileService.AddEducation(c.Request().Context(), accountID, model.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// RemoveSubItem returns a handler deleting one entry of the given collection.
func (h *Profile) RemoveSubItem(kind model.SubItemKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		accountID, err := currentAccountID(c, h.contextManager)
		if err != nil {
			return err
		}

		profile, err := h.profileService.RemoveSubItem(c.Request().Context(), accountID, kind, c.Param("id"))
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, profile)
	}
}

// GithubRepos proxies the upstream repository list as is.
func (h *Profile) GithubRepos(c echo.Context) error {
	repos, err := h.repoService.List(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, repos)
}

func parsePeriod(rawFrom, rawTo string) (from time.Time, to *time.Time, err error) {
	from, err = validate.ParseDate(rawFrom)
	if err != nil {
		return from, nil, apiErrors.NewErrValidation(apiErrors.FieldError{Msg: "From date is required", Param: "from"})
	}
	to, err = validate.ParseOptionalDate(rawTo)
	if err != nil {
		return from, nil, apiErrors.NewErrValidation(apiErrors.FieldError{Msg: "To date is invalid", Param: "to"})
	}
	return from, to, nil
}
