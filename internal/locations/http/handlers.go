package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rallypoint-app/rallypoint-backend/internal/locations/domain"
	"github.com/rallypoint-app/rallypoint-backend/internal/locations/repository"
	"github.com/rallypoint-app/rallypoint-backend/internal/web"
)

// Handler bundles the dependencies for location pages.
type Handler struct {
	repo *repository.Repo
}

func New(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

// Register attaches location routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/locations", h.list)
	r.GET("/location/get/:id", h.detail)
	r.GET("/location/new", h.createForm)
	r.POST("/location/create/new", h.create)
}

func (h *Handler) list(c *gin.Context) {
	locations, err := h.repo.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "locations.tmpl", gin.H{"List": locations})
}

func (h *Handler) detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	loc, err := h.repo.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		web.NotFound(c)
		return
	}
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "location.tmpl", domain.NewDetail(*loc))
}

func (h *Handler) createForm(c *gin.Context) {
	c.HTML(http.StatusOK, "locationNew.tmpl", nil)
}

type createLocationForm struct {
	Name      string  `form:"name" json:"name"`
	Address1  string  `form:"address1" json:"address1"`
	Address2  string  `form:"address2" json:"address2"`
	City      string  `form:"city" json:"city"`
	State     string  `form:"state" json:"state"`
	ZipCode   string  `form:"zipCode" json:"zipCode"`
	Latitude  float64 `form:"latitude" json:"latitude"`
	Longitude float64 `form:"longitude" json:"longitude"`
}

func (h *Handler) create(c *gin.Context) {
	var form createLocationForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	_, err := h.repo.Create(c.Request.Context(), domain.Location{
		Name:      form.Name,
		Address1:  form.Address1,
		Address2:  form.Address2,
		City:      form.City,
		State:     form.State,
		ZipCode:   form.ZipCode,
		Latitude:  form.Latitude,
		Longitude: form.Longitude,
	})
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/locations")
}
