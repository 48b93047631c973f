package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	actdomain "github.com/rallypoint-app/rallypoint-backend/internal/activities/domain"
	"github.com/rallypoint-app/rallypoint-backend/internal/groups/domain"
	"github.com/rallypoint-app/rallypoint-backend/internal/groups/repository"
	usersdomain "github.com/rallypoint-app/rallypoint-backend/internal/users/domain"
	"github.com/rallypoint-app/rallypoint-backend/internal/web"
)

// loadOptions fetches the activity and user options shared by the group forms.
func (h *Handler) loadOptions(c *gin.Context) ([]actdomain.Option, []usersdomain.Option, error) {
	activities, err := h.activities.ListOptions(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	users, err := h.users.ListOptions(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	return activities, users, nil
}

func (h *Handler) createForm(c *gin.Context) {
	activities, users, err := h.loadOptions(c)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "createGroup.tmpl", gin.H{
		"Activities": activities,
		"Users":      users,
	})
}

type createGroupForm struct {
	Name         string   `form:"name" json:"name"`
	Description  string   `form:"description" json:"description"`
	ActionToTake string   `form:"actionToTake" json:"actionToTake"`
	ActivityID   int64    `form:"activityId" json:"activityId"`
	UserIDs      []string `form:"userIds" json:"userIds"`
}

// validate reports the first failing rule; the action-to-take message takes
// precedence over the member-count message.
func (f *createGroupForm) validate() string {
	if f.ActionToTake == "" {
		return "Action to take is required."
	}
	if len(f.UserIDs) == 0 {
		return "At least one member is required."
	}
	return ""
}

func (f *createGroupForm) userIDs() ([]int64, error) {
	out := make([]int64, 0, len(f.UserIDs))
	for _, raw := range f.UserIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse member id %q: %w", raw, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func (h *Handler) create(c *gin.Context) {
	var form createGroupForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	if msg := form.validate(); msg != "" {
		activities, users, err := h.loadOptions(c)
		if err != nil {
			web.ServerError(c, err)
			return
		}

		c.HTML(http.StatusBadRequest, "createGroup.tmpl", gin.H{
			"Name":         form.Name,
			"Description":  form.Description,
			"ActionToTake": form.ActionToTake,
			"Invalid":      msg,
			"Activities":   activities,
			"Users":        users,
		})
		return
	}

	userIDs, err := form.userIDs()
	if err != nil {
		web.ServerError(c, err)
		return
	}

	_, err = h.repo.CreateWithMembers(c.Request.Context(), repository.CreateInput{
		Name:         form.Name,
		Description:  form.Description,
		ActionToTake: form.ActionToTake,
		ActivityID:   form.ActivityID,
		UserIDs:      userIDs,
	})
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/groups")
}

// loadDetail resolves the group page aggregate by id or share code. A nil
// detail with a nil error means the group has no members (render not-found).
func (h *Handler) loadDetail(c *gin.Context, ref string) (*domain.Detail, error) {
	rows, err := h.repo.DetailRows(c.Request.Context(), ref)
	if err != nil {
		return nil, err
	}

	d := domain.AssembleDetail(ref, rows)
	if d == nil {
		return nil, nil
	}

	if d.ActivityID != 0 {
		name, err := h.repo.ActivityName(c.Request.Context(), d.ActivityID)
		if err != nil {
			return nil, err
		}
		d.ActivityName = name
	}
	return d, nil
}

func (h *Handler) detail(c *gin.Context) {
	d, err := h.loadDetail(c, c.Param("id"))
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if d == nil {
		web.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "detailGroup.tmpl", d)
}

func (h *Handler) editForm(c *gin.Context) {
	ref := c.Param("id")

	rows, err := h.repo.DetailRows(c.Request.Context(), ref)
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if len(rows) == 0 {
		web.NotFound(c)
		return
	}

	activities, err := h.activities.ListOptions(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}
	group := rows[0]
	for i := range activities {
		activities[i].Selected = activities[i].ID == group.ActivityID
	}

	c.HTML(http.StatusOK, "updateGroup.tmpl", gin.H{
		"Ref":          ref,
		"Name":         group.Name,
		"Description":  group.Description,
		"ActionToTake": group.ActionToTake,
		"ActivityID":   group.ActivityID,
		"Activities":   activities,
	})
}

type updateGroupForm struct {
	Name         string `form:"name" json:"name"`
	Description  string `form:"description" json:"description"`
	ActionToTake string `form:"actionToTake" json:"actionToTake"`
	ActivityID   int64  `form:"activityId" json:"activityId"`
}

func (h *Handler) update(c *gin.Context) {
	ref := c.Param("id")

	var form updateGroupForm
	if err := c.ShouldBind(&form); err != nil {
		web.ServerError(c, err)
		return
	}

	if form.ActionToTake == "" {
		activities, err := h.activities.ListOptions(c.Request.Context())
		if err != nil {
			web.ServerError(c, err)
			return
		}
		for i := range activities {
			activities[i].Selected = activities[i].ID == form.ActivityID
		}

		c.HTML(http.StatusBadRequest, "updateGroup.tmpl", gin.H{
			"Ref":          ref,
			"Name":         form.Name,
			"Description":  form.Description,
			"ActionToTake": form.ActionToTake,
			"ActivityID":   form.ActivityID,
			"Activities":   activities,
			"Invalid":      "Action to take is required.",
		})
		return
	}

	err := h.repo.Update(c.Request.Context(), ref, form.Name, form.Description, form.ActionToTake, form.ActivityID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/groups/"+ref)
}

func (h *Handler) list(c *gin.Context) {
	groups, err := h.repo.List(c.Request.Context())
	if err != nil {
		web.ServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "listGroups.tmpl", gin.H{"Groups": groups})
}

// detailWithMessage re-renders the group page with a validation message.
func (h *Handler) detailWithMessage(c *gin.Context, ref, msg string) {
	d, err := h.loadDetail(c, ref)
	if err != nil {
		web.ServerError(c, err)
		return
	}
	if d == nil {
		web.NotFound(c)
		return
	}

	d.Invalid = msg
	c.HTML(http.StatusOK, "detailGroup.tmpl", d)
}

func (h *Handler) addMember(c *gin.Context) {
	ref := c.Param("id")

	rawUserID := c.PostForm("userId")
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		h.detailWithMessage(c, ref, fmt.Sprintf("Could not find user with ID %s", rawUserID))
		return
	}

	memberships, err := h.repo.UserMemberships(c.Request.Context(), userID)
	if err != nil {
		web.ServerError(c, err)
		return
	}

	if len(memberships) == 0 {
		h.detailWithMessage(c, ref, fmt.Sprintf("Could not find user with ID %s", rawUserID))
		return
	}

	// The duplicate check matches the numeric group id only; a share-code
	// reference never matches here even though lookups elsewhere accept it.
	groupID := repository.RefID(ref)
	for _, ms := range memberships {
		if ms.GroupID == groupID && groupID != 0 {
			h.detailWithMessage(c, ref, "That user is already a member.")
			return
		}
	}

	if err := h.repo.AddMember(c.Request.Context(), userID, groupID); err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/groups/"+ref)
}

func (h *Handler) removeMember(c *gin.Context) {
	ref := c.Param("id")

	memberID, err := strconv.ParseInt(c.Param("memberId"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	// Redirects whether or not a membership row existed.
	if err := h.repo.RemoveMember(c.Request.Context(), repository.RefID(ref), memberID); err != nil {
		web.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/groups/"+ref)
}
