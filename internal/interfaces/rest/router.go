package rest

import (
	"net/http"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/interfaces/middleware"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"go.uber.org/zap"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	// Links picks the origin of password reset links
	Links          LinkBase
	Metrics        *middleware.Metrics
	MetricsHandler http.Handler
	DB             Pinger
	// EnablePprof exposes /debug/pprof from http.DefaultServeMux
	EnablePprof bool
}

// NewRouter builds the gin engine with every route mounted
func NewRouter(svcs Services, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	httpLog := logger.Named(constants.LoggerHTTP)

	router := gin.New()
	router.Use(
		ginzap.Ginzap(httpLog, time.RFC3339, true),
		ginzap.RecoveryWithZap(httpLog, true),
	)
	// Metrics wrap the error handler so they see the final status
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Handler())
	}
	router.Use(
		middleware.ErrorHandler(httpLog),
		middleware.Cors(opts.AllowedOrigins),
	)

	health := NewHealthHandler(opts.DB)
	router.GET("/", health.Root)
	router.GET("/health", health.Health)
	router.GET("/healthz", health.Ready)
	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}
	if opts.EnablePprof {
		router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	requireAuth := middleware.RequireAuth(svcs.Auth)
	requireStaff := middleware.RequireStaff()

	authHandler := NewAuthHandler(svcs.Auth, opts.Links)
	logHandler := NewLogHandler(svcs.Logs)
	resources := []interface{ Register(*gin.RouterGroup) }{
		NewUserHandler(svcs.Users),
		NewLeadHandler(svcs.Leads),
		NewCampaignHandler(svcs.Campaigns),
		NewTagHandler(svcs.Tags),
		NewLabelHandler(svcs.Labels),
		NewTemplateHandler(svcs.Templates),
	}

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/password/forgot",
				middleware.Throttle(constants.ThrottlePasswordForgot, 5, 15*time.Minute, middleware.ByIP),
				authHandler.ForgotPassword)
			auth.POST("/password/reset",
				middleware.Throttle(constants.ThrottlePasswordReset, 5, 15*time.Minute, middleware.ByIP),
				authHandler.ResetPassword)
			auth.POST("/password/change", requireAuth,
				middleware.Throttle(constants.ThrottlePasswordChange, 10, time.Hour, middleware.ByUser),
				authHandler.ChangePassword)
			auth.POST("/logout", authHandler.Logout)
		}

		logs := api.Group("/logs")
		{
			logs.GET("", requireAuth, requireStaff, logHandler.Tail)
			logs.POST("/ingest",
				middleware.Throttle(constants.ThrottleLogIngest, 120, time.Minute, middleware.ByIP),
				logHandler.Ingest)
		}

		v1 := api.Group("/v1")
		v1.POST("/auth/token", authHandler.Login)
		v1.POST("/auth/token/refresh", authHandler.Refresh)

		// The extension still calls the unversioned paths
		for _, group := range []*gin.RouterGroup{v1, api} {
			protected := group.Group("", requireAuth)
			for _, h := range resources {
				h.Register(protected)
			}
		}
	}

	return router
}

// pprofPrefix is left alone by StripTrailingSlash; the pprof index lives at
// the slash-terminated path
const pprofPrefix = "/debug/pprof/"

// StripTrailingSlash lets /api/leads/ and /api/leads reach the same route
// without a redirect
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") && !strings.HasPrefix(p, pprofPrefix) {
			r.URL.Path = strings.TrimRight(p, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
