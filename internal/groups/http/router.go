package http

import "github.com/gin-gonic/gin"

// Register attaches group routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/groups", h.list)
	r.GET("/groups/new", h.createForm)
	r.POST("/groups", h.create)
	r.GET("/groups/:id", h.detail)
	r.GET("/groups/:id/edit", h.editForm)
	r.POST("/groups/:id", h.update)
	r.POST("/groups/:id/members", h.addMember)
	r.POST("/groups/:id/members/delete/:memberId", h.removeMember)
}
