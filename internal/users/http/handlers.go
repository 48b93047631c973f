package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rallypoint-app/rallypoint-backend/internal/users/domain"
	"github.com/rallypoint-app/rallypoint-backend/internal/web"
)

type createUserForm struct {
	FirstName string `form:"firstName" json:"firstName"`
	LastName  string `form:"lastName" json:"lastName"`
	Phone     string `form:"phone" json:"phone"`
	Email     string `form:"email" json:"email"`
	Invalid   string `form:"-" json:"-"`
}

// validate reports the first missing required field; only one message is
// shown even when several fields are empty.
func (f *createUserForm) validate() string {
	if f.FirstName == "" {
		return "First name is required."
	}
	if f.LastName == "" {
		return "Last name is required."
	}
	if f.Phone == "" {
		return "Phone number is required."
	}
	return ""
}

func (h *Handler) createForm(c *gin.Context) {
	c.HTML(http.StatusOK, "createUser.tmpl", createUserForm{})
}

func (h *Handler) create(c *gin.Context) {
	var form createUserForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	if msg := form.validate(); msg != "" {
		form.Invalid = msg
		c.HTML(http.StatusBadRequest, "createUser.tmpl", form)
		return
	}

	if _, err := h.repo.Create(c.Request.Context(), form.FirstName, form.LastName, form.Phone, form.Email); err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}

func (h *Handler) list(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "listUsers.tmpl", gin.H{"Users": users})
}

func (h *Handler) listGroups(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	firstName, groups, err := h.repo.ListGroups(c.Request.Context(), userID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if len(groups) == 0 {
		// Users without memberships never appear in the join; look the user
		// up separately to tell "no groups" apart from "no such user".
		firstName, err = h.repo.FirstName(c.Request.Context(), userID)
		if errors.Is(err, domain.ErrNotFound) {
			web.NotFound(c)
			return
		}
		if err != nil {
			web.ServerError(c, err)
			return
		}
	}

	c.HTML(http.StatusOK, "listUserGroups.tmpl", gin.H{
		"FirstName": firstName,
		"Groups":    domain.DisplayGroups(groups),
	})
}
