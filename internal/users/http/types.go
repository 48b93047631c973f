package http

import "github.com/rallypoint-app/rallypoint-backend/internal/users/repository"

// Handler bundles the dependencies for user pages.
type Handler struct {
	repo *repository.Repo
}

func New(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}
