package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
)

type TemplateHandler struct {
	svc TemplateService
}

func NewTemplateHandler(svc TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

func (h *TemplateHandler) List(c *gin.Context) {
	HandleGet(c, func() (interface{}, error) {
		return h.svc.List(c.Request.Context(), GetUserFromContext(c))
	})
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleGet(c, func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), GetUserFromContext(c), id)
	})
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var in models.TemplateInput
	HandleCreate(c, &in, func() (interface{}, error) {
		return h.svc.Create(c.Request.Context(), GetUserFromContext(c), in)
	})
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var in models.TemplateInput
	HandleUpdate(c, &in, func() (interface{}, error) {
		return h.svc.Update(c.Request.Context(), GetUserFromContext(c), id, in, isPartial(c))
	})
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleDelete(c, func() error {
		return h.svc.Delete(c.Request.Context(), GetUserFromContext(c), id)
	})
}

func (h *TemplateHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/templates", h.List)
	rg.POST("/templates", h.Create)
	rg.GET("/templates/:id", h.Get)
	rg.PUT("/templates/:id", h.Update)
	rg.PATCH("/templates/:id", h.Update)
	rg.DELETE("/templates/:id", h.Delete)
}
