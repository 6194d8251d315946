package services

import (
	"github.com/ldanie38/geniuscrm/internal/config"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/internal/infrastructure/database"
	"github.com/ldanie38/geniuscrm/internal/infrastructure/persistence"
	"github.com/ldanie38/geniuscrm/pkg/auth"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/integrations"
	"go.uber.org/zap"
)

// ServiceManager orchestrates all services with dependency injection
type ServiceManager struct {
	db *database.Connection

	Tokens *auth.TokenIssuer
	Mailer ports.Mailer

	Auth      *AuthService
	Users     *UserService
	Leads     *LeadService
	Campaigns *CampaignService
	Tags      *TagService
	Labels    *LabelService
	Templates *TemplateService
	Logs      *LogService
	Birthday  *BirthdayService
}

// NewServiceManager creates a new service manager with all dependencies wired
func NewServiceManager(db *database.Connection, cfg *config.Config, logger *zap.Logger) *ServiceManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &ServiceManager{db: db}

	sqlDB := db.DB()
	users := persistence.NewUserRepository(sqlDB)
	campaigns := persistence.NewCampaignRepository(sqlDB)
	tags := persistence.NewTagRepository(sqlDB)
	labels := persistence.NewLabelRepository(sqlDB)

	integrationsLog := logger.Named(constants.LoggerIntegrations)
	sendgrid := integrations.NewSendGridClient(cfg.SendGridBaseURL, cfg.SendGridAPIKey, integrationsLog)
	facebook := integrations.NewFacebookClient(cfg.FacebookBaseURL, cfg.FacebookAPIKey, integrationsLog)

	// Without a SendGrid key outbound mail is only logged
	if cfg.SendGridAPIKey != "" {
		sm.Mailer = NewSendGridMailer(sendgrid)
	} else {
		sm.Mailer = NewLogMailer(integrationsLog.Named("mail"))
	}

	sm.Tokens = auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	resets := auth.NewResetTokens(cfg.JWTSecret, cfg.PasswordResetTTL)

	sm.Auth = NewAuthService(users, sm.Tokens, resets, sm.Mailer, cfg.DefaultFromEmail, logger.Named(constants.LoggerAuth))
	sm.Users = NewUserService(users)
	sm.Leads = NewLeadService(persistence.NewLeadRepository(sqlDB), campaigns, tags, logger)
	sm.Campaigns = NewCampaignService(campaigns, logger)
	sm.Tags = NewTagService(tags, logger)
	sm.Labels = NewLabelService(labels)
	sm.Templates = NewTemplateService(persistence.NewTemplateRepository(sqlDB), labels)
	sm.Logs = NewLogService(logger, cfg.LogDir, cfg.Env)
	sm.Birthday = NewBirthdayService(facebook, sm.Mailer, cfg.DefaultFromEmail, integrationsLog)

	return sm
}

// DB returns the underlying connection
func (sm *ServiceManager) DB() *database.Connection {
	return sm.db
}
