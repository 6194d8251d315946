package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
)

type CampaignHandler struct {
	svc CampaignService
}

func NewCampaignHandler(svc CampaignService) *CampaignHandler {
	return &CampaignHandler{svc: svc}
}

func (h *CampaignHandler) List(c *gin.Context) {
	HandleGet(c, func() (interface{}, error) {
		return h.svc.List(c.Request.Context())
	})
}

func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleGet(c, func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), id)
	})
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var in models.CampaignInput
	HandleCreate(c, &in, func() (interface{}, error) {
		return h.svc.Create(c.Request.Context(), GetUserFromContext(c), in)
	})
}

func (h *CampaignHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var in models.CampaignInput
	HandleUpdate(c, &in, func() (interface{}, error) {
		return h.svc.Update(c.Request.Context(), GetUserFromContext(c), id, in, isPartial(c))
	})
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleDelete(c, func() error {
		return h.svc.Delete(c.Request.Context(), GetUserFromContext(c), id)
	})
}

func (h *CampaignHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/campaigns", h.List)
	rg.POST("/campaigns", h.Create)
	rg.GET("/campaigns/:id", h.Get)
	rg.PUT("/campaigns/:id", h.Update)
	rg.PATCH("/campaigns/:id", h.Update)
	rg.DELETE("/campaigns/:id", h.Delete)
}
