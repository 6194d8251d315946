package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
)

type LabelHandler struct {
	svc LabelService
}

func NewLabelHandler(svc LabelService) *LabelHandler {
	return &LabelHandler{svc: svc}
}

func (h *LabelHandler) List(c *gin.Context) {
	HandleGet(c, func() (interface{}, error) {
		return h.svc.List(c.Request.Context(), GetUserFromContext(c))
	})
}

func (h *LabelHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleGet(c, func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), GetUserFromContext(c), id)
	})
}

func (h *LabelHandler) Create(c *gin.Context) {
	var in models.LabelInput
	HandleCreate(c, &in, func() (interface{}, error) {
		return h.svc.Create(c.Request.Context(), GetUserFromContext(c), in)
	})
}

func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var in models.LabelInput
	HandleUpdate(c, &in, func() (interface{}, error) {
		return h.svc.Update(c.Request.Context(), GetUserFromContext(c), id, in, isPartial(c))
	})
}

func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleDelete(c, func() error {
		return h.svc.Delete(c.Request.Context(), GetUserFromContext(c), id)
	})
}

func (h *LabelHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/labels", h.List)
	rg.POST("/labels", h.Create)
	rg.GET("/labels/:id", h.Get)
	rg.PUT("/labels/:id", h.Update)
	rg.PATCH("/labels/:id", h.Update)
	rg.DELETE("/labels/:id", h.Delete)
}
