package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
)

type LogHandler struct {
	svc LogService
}

func NewLogHandler(svc LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

// Tail handles GET /api/logs?level=
func (h *LogHandler) Tail(c *gin.Context) {
	HandleGet(c, func() (interface{}, error) {
		return h.svc.Tail(c.Query(constants.ParamLevel))
	})
}

// Ingest handles POST /api/logs/ingest from the browser extension
func (h *LogHandler) Ingest(c *gin.Context) {
	var entry models.LogEntry
	if !BindJSON(c, &entry) {
		return
	}
	h.svc.Ingest(entry)
	c.Status(http.StatusCreated)
}
