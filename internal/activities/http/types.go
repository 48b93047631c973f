package http

import (
	"context"

	"github.com/rallypoint-app/rallypoint-backend/internal/activities/repository"
	locdomain "github.com/rallypoint-app/rallypoint-backend/internal/locations/domain"
	usersdomain "github.com/rallypoint-app/rallypoint-backend/internal/users/domain"
)

// LocationSource supplies location references for the activity forms.
type LocationSource interface {
	ListRefs(ctx context.Context) ([]locdomain.Ref, error)
	ListRefsExcept(ctx context.Context, locationID int64) ([]locdomain.Ref, error)
}

// UserSource supplies the user list for contact selects.
type UserSource interface {
	List(ctx context.Context) ([]usersdomain.User, error)
}

// Handler bundles the dependencies for activity pages.
type Handler struct {
	repo      *repository.Repo
	locations LocationSource
	users     UserSource
}

func New(repo *repository.Repo, locations LocationSource, users UserSource) *Handler {
	return &Handler{repo: repo, locations: locations, users: users}
}
