package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rallypoint-app/rallypoint-backend/internal/activities/domain"
	"github.com/rallypoint-app/rallypoint-backend/internal/activities/repository"
	"github.com/rallypoint-app/rallypoint-backend/internal/web"
)

func (h *Handler) list(c *gin.Context) {
	rows, err := h.repo.ListRows(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "activities.tmpl", gin.H{"List": domain.DisplayList(rows)})
}

func (h *Handler) createForm(c *gin.Context) {
	locations, err := h.locations.ListRefs(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "activityNew.tmpl", gin.H{
		"Locations": locations,
		"Users":     users,
	})
}

type activityForm struct {
	Name       string `form:"name" json:"name"`
	StartTime  string `form:"startTime" json:"startTime"`
	EndTime    string `form:"endTime" json:"endTime"`
	Risk       string `form:"risk" json:"risk"`
	LocationID int64  `form:"locationId" json:"locationId"`
	UserID     int64  `form:"userId" json:"userId"`
}

func (f *activityForm) timeRange() (start, end time.Time, err error) {
	start, err = time.Parse(domain.EditTimeLayout, f.StartTime)
	if err != nil {
		return start, end, fmt.Errorf("parse start time: %w", err)
	}
	end, err = time.Parse(domain.EditTimeLayout, f.EndTime)
	if err != nil {
		return start, end, fmt.Errorf("parse end time: %w", err)
	}
	return start, end, nil
}

func (h *Handler) create(c *gin.Context) {
	var form activityForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	start, end, err := form.timeRange()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	_, err = h.repo.CreateWithContact(c.Request.Context(), repository.CreateInput{
		Name:       form.Name,
		StartTime:  start,
		EndTime:    end,
		Risk:       form.Risk,
		LocationID: form.LocationID,
		UserID:     form.UserID,
	})
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/activities")
}

// editForm assembles the edit page from four dependent queries; any failure
// short-circuits the chain.
func (h *Handler) editForm(c *gin.Context) {
	activityID, err := strconv.ParseInt(c.Param("activityId"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}
	ctx := c.Request.Context()

	edit, err := h.repo.GetEdit(ctx, activityID)
	if errors.Is(err, domain.ErrNotFound) {
		web.NotFound(c)
		return
	}
	if err != nil {
		web.ServerError(c, err)
		return
	}

	contacts, err := h.repo.ListContacts(ctx, activityID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	choices, err := h.locations.ListRefsExcept(ctx, edit.LocationID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	users, err := h.users.List(ctx)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "activityEdit.tmpl", gin.H{
		"ActivityID":      activityID,
		"Location":        edit.Location,
		"LocationID":      edit.LocationID,
		"Name":            edit.Name,
		"StartTime":       edit.StartTime,
		"EndTime":         edit.EndTime,
		"Risk":            edit.Risk,
		"Contacts":        domain.MarkContacts(contacts, activityID),
		"LocationChoices": choices,
		"AllUsers":        users,
	})
}

func (h *Handler) update(c *gin.Context) {
	activityID, err := strconv.ParseInt(c.Param("activityId"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	var form activityForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	start, end, err := form.timeRange()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	err = h.repo.Update(c.Request.Context(), activityID, form.Name, start, end, form.Risk, form.LocationID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/activity/get/"+strconv.FormatInt(activityID, 10))
}

func (h *Handler) detail(c *gin.Context) {
	activityID, err := strconv.ParseInt(c.Param("activityId"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}
	ctx := c.Request.Context()

	row, err := h.repo.GetDetail(ctx, activityID)
	if errors.Is(err, domain.ErrNotFound) {
		web.NotFound(c)
		return
	}
	if err != nil {
		web.ServerError(c, err)
		return
	}

	contacts, err := h.repo.ListContacts(ctx, activityID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	start, end := domain.FormatTimeRange(row.StartTime, row.EndTime)
	c.HTML(http.StatusOK, "activity.tmpl", gin.H{
		"ActivityID": activityID,
		"Location":   row.Location,
		"Name":       row.Name,
		"StartTime":  start,
		"EndTime":    end,
		"Risk":       row.Risk,
		"Contacts":   contacts,
	})
}

type contactForm struct {
	UserID int64 `form:"userId" json:"userId"`
}

func (h *Handler) addContact(c *gin.Context) {
	activityID, err := strconv.ParseInt(c.Param("activityId"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	if err := h.repo.AddContact(c.Request.Context(), form.UserID, activityID); err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/activity/edit/"+strconv.FormatInt(activityID, 10))
}

func (h *Handler) removeContact(c *gin.Context) {
	activityID, err := strconv.ParseInt(c.Param("activityId"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	if err := h.repo.RemoveContact(c.Request.Context(), form.UserID, activityID); err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/activity/edit/"+strconv.FormatInt(activityID, 10))
}
