package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
)

type TagHandler struct {
	svc TagService
}

func NewTagHandler(svc TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

func (h *TagHandler) List(c *gin.Context) {
	HandleGet(c, func() (interface{}, error) {
		return h.svc.List(c.Request.Context())
	})
}

func (h *TagHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleGet(c, func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), id)
	})
}

func (h *TagHandler) Create(c *gin.Context) {
	var in models.TagInput
	HandleCreate(c, &in, func() (interface{}, error) {
		return h.svc.Create(c.Request.Context(), GetUserFromContext(c), in)
	})
}

func (h *TagHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var in models.TagInput
	HandleUpdate(c, &in, func() (interface{}, error) {
		return h.svc.Update(c.Request.Context(), GetUserFromContext(c), id, in, isPartial(c))
	})
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleDelete(c, func() error {
		return h.svc.Delete(c.Request.Context(), GetUserFromContext(c), id)
	})
}

func (h *TagHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/tags", h.List)
	rg.POST("/tags", h.Create)
	rg.GET("/tags/:id", h.Get)
	rg.PUT("/tags/:id", h.Update)
	rg.PATCH("/tags/:id", h.Update)
	rg.DELETE("/tags/:id", h.Delete)
}
