package services

import (
	"context"

	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/integrations"
	"go.uber.org/zap"
)

// SendGridMailer delivers email through the SendGrid v3 API
type SendGridMailer struct {
	client *integrations.SendGridClient
}

func NewSendGridMailer(client *integrations.SendGridClient) *SendGridMailer {
	return &SendGridMailer{client: client}
}

func (m *SendGridMailer) Send(ctx context.Context, msg ports.Email) error {
	_, err := m.client.SendEmail(ctx, msg.From, msg.To, msg.Subject, msg.Body)
	return err
}

// LogMailer writes messages to the log instead of sending them
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg ports.Email) error {
	m.logger.Info("email",
		zap.String("from", msg.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}
