package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apiErrors "github.com/dtroode/scribehub/internal/api/errors"
	"github.com/dtroode/scribehub/internal/model"
)

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apiErrors.NewErrMalformedBody()
	}
	return c.Validate(req)
}

func currentAccountID(c echo.Context, contextManager model.ContextManager) (uuid.UUID, error) {
	accountID, ok := contextManager.GetAccountIDFromContext(c.Request().Context())
	if !ok {
		return uuid.Nil, apiErrors.NewErrMissingAuthorizationToken()
	}
	return accountID, nil
}

type registerRequest struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Please enter a password with 6 or more characters"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

// profileRequest carries list fields as comma separated strings.
type profileRequest struct {
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Agent          string `json:"agent"`
	Genres         string `json:"genres"`
	Specialties    string `json:"specialties"`
	Influences     string `json:"influences"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

func (r profileRequest) input() model.ProfileInput {
	return model.ProfileInput{
		Website:        r.Website,
		Location:       r.Location,
		Bio:            r.Bio,
		GithubUsername: r.GithubUsername,
		Agent:          r.Agent,
		Genres:         r.Genres,
		Specialties:    r.Specialties,
		Influences:     r.Influences,
		Youtube:        r.Youtube,
		Twitter:        r.Twitter,
		Facebook:       r.Facebook,
		Linkedin:       r.Linkedin,
		Instagram:      r.Instagram,
	}
}

type publicationRequest struct {
	Title           string `json:"title" validate:"required" msg:"Title is required"`
	Publisher       string `json:"publisher" validate:"required" msg:"Publisher is required"`
	PublicationDate string `json:"publicationDate" validate:"required,date" msg:"Publication date is required"`
	Description     string `json:"description"`
}

type careerRequest struct {
	JobTitle    string `json:"jobTitle" validate:"required" msg:"Job title is required"`
	Company     string `json:"company" validate:"required" msg:"Company is required"`
	Website     string `json:"website"`
	From        string `json:"from" validate:"required,date" msg:"From date is required"`
	To          string `json:"to" validate:"omitempty,date" msg:"To date is invalid"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" validate:"required" msg:"School is required"`
	Degree       string `json:"degree" validate:"required" msg:"Degree is required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required" msg:"Field of study is required"`
	From         string `json:"from" validate:"required,date" msg:"From date is required"`
	To           string `json:"to" validate:"omitempty,date" msg:"To date is invalid"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type textRequest struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}
