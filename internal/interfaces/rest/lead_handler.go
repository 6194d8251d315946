package rest

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/ldanie38/geniuscrm/pkg/utils"
)

type LeadHandler struct {
	svc LeadService
}

func NewLeadHandler(svc LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// List handles GET /leads?status=&campaign=&owner=&search=&archived=
func (h *LeadHandler) List(c *gin.Context) {
	filter := models.LeadFilter{
		Status:   strings.TrimSpace(c.Query(constants.ParamStatus)),
		Search:   strings.TrimSpace(c.Query(constants.ParamSearch)),
		Archived: utils.ParseOptionalBool(c.Query(constants.ParamArchived)),
	}
	var err error
	if filter.CampaignID, err = utils.ParseOptionalID(c.Query(constants.ParamCampaign)); err != nil {
		RespondAppError(c, errors.NewValidationError(constants.ParamCampaign, "Enter a whole number."))
		return
	}
	if filter.OwnerID, err = utils.ParseOptionalID(c.Query(constants.ParamOwner)); err != nil {
		RespondAppError(c, errors.NewValidationError(constants.ParamOwner, "Enter a whole number."))
		return
	}

	HandleGet(c, func() (interface{}, error) {
		return h.svc.List(c.Request.Context(), filter)
	})
}

func (h *LeadHandler) Get(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleGet(c, func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), id)
	})
}

func (h *LeadHandler) Create(c *gin.Context) {
	var in models.LeadInput
	HandleCreate(c, &in, func() (interface{}, error) {
		return h.svc.Create(c.Request.Context(), GetUserFromContext(c), in)
	})
}

// Update handles both PUT and PATCH /leads/:id
func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var in models.LeadInput
	HandleUpdate(c, &in, func() (interface{}, error) {
		return h.svc.Update(c.Request.Context(), GetUserFromContext(c), id, in, isPartial(c))
	})
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	HandleDelete(c, func() error {
		return h.svc.Delete(c.Request.Context(), GetUserFromContext(c), id)
	})
}

func (h *LeadHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/leads", h.List)
	rg.POST("/leads", h.Create)
	rg.GET("/leads/:id", h.Get)
	rg.PUT("/leads/:id", h.Update)
	rg.PATCH("/leads/:id", h.Update)
	rg.DELETE("/leads/:id", h.Delete)
}
