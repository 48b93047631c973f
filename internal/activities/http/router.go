package http

import "github.com/gin-gonic/gin"

// Register attaches activity routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/activities", h.list)
	r.GET("/activity/new", h.createForm)
	r.POST("/activity/new", h.create)
	r.GET("/activity/edit/:activityId", h.editForm)
	r.POST("/activity/update/:activityId", h.update)
	r.GET("/activity/get/:activityId", h.detail)
	r.POST("/add/contact/:activityId", h.addContact)
	r.POST("/delete/contact/:activityId", h.removeContact)
}
