package http

import "github.com/gin-gonic/gin"

// Register attaches user routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/users", h.list)
	r.GET("/users/new", h.createForm)
	r.POST("/users", h.create)
	r.GET("/users/:id/groups", h.listGroups)
}
