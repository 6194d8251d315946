package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/pkg/constants"
)

// Cors allows the configured origins. A lone "*" allows every origin;
// entries such as chrome-extension://* match any extension id.
func Cors(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:           []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:           []string{"Origin", constants.HeaderContentType, "Accept", constants.HeaderAuthorization, constants.HeaderXRequestID},
		ExposeHeaders:          []string{"Content-Length"},
		AllowWildcard:          true,
		AllowBrowserExtensions: true,
		MaxAge:                 12 * time.Hour,
	}

	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
		if o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		allowed = []string{"chrome-extension://*"}
	}
	cfg.AllowOrigins = allowed
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
