package rest

import (
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	HandleGet(c, func() (interface{}, error) {
		return h.svc.List(c.Request.Context())
	})
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleGet(c, func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), id)
	})
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.Get)
}
