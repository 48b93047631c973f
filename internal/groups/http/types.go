package http

import (
	"context"

	actdomain "github.com/rallypoint-app/rallypoint-backend/internal/activities/domain"
	"github.com/rallypoint-app/rallypoint-backend/internal/groups/repository"
	usersdomain "github.com/rallypoint-app/rallypoint-backend/internal/users/domain"
)

// ActivityOptionSource supplies activity options for the group forms.
type ActivityOptionSource interface {
	ListOptions(ctx context.Context) ([]actdomain.Option, error)
}

// UserOptionSource supplies user options for the group forms.
type UserOptionSource interface {
	ListOptions(ctx context.Context) ([]usersdomain.Option, error)
}

// Handler bundles the dependencies for group pages.
type Handler struct {
	repo       *repository.Repo
	activities ActivityOptionSource
	users      UserOptionSource
}

func New(repo *repository.Repo, activities ActivityOptionSource, users UserOptionSource) *Handler {
	return &Handler{repo: repo, activities: activities, users: users}
}
