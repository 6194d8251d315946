package integrations

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultSendGridBaseURL is the SendGrid v3 API root
const DefaultSendGridBaseURL = "https://api.sendgrid.com/v3"

type sgAddress struct {
	Email string `json:"email"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SendGridMail is the body of POST /mail/send
type SendGridMail struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

// SendGridTemplate is one entry of GET /templates
type SendGridTemplate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Generation string `json:"generation,omitempty"`
}

// SendGridClient wraps the SendGrid v3 API with bearer authentication
type SendGridClient struct {
	*BaseClient
}

// NewSendGridClient creates a SendGridClient. An empty baseURL selects the default.
func NewSendGridClient(baseURL, apiKey string, logger *zap.Logger) *SendGridClient {
	if baseURL == "" {
		baseURL = DefaultSendGridBaseURL
	}
	return &SendGridClient{BaseClient: NewBaseClient(baseURL, apiKey, logger)}
}

func (c *SendGridClient) opts(body interface{}) *RequestOptions {
	return &RequestOptions{
		JSON:    body,
		Headers: map[string]string{"Authorization": "Bearer " + c.APIKey},
	}
}

// NewPlainTextMail builds a single-recipient text/plain message
func NewPlainTextMail(from, to, subject, content string) SendGridMail {
	return SendGridMail{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: to}}}},
		From:             sgAddress{Email: from},
		Subject:          subject,
		Content:          []sgContent{{Type: "text/plain", Value: content}},
	}
}

// SendEmail sends a plain-text email. SendGrid answers 202 with an empty body.
func (c *SendGridClient) SendEmail(ctx context.Context, from, to, subject, content string) (*Response, error) {
	return c.Post(ctx, "/mail/send", c.opts(NewPlainTextMail(from, to, subject, content)))
}

// ListTemplates returns the account's transactional templates
func (c *SendGridClient) ListTemplates(ctx context.Context) ([]SendGridTemplate, error) {
	resp, err := c.Get(ctx, "/templates", c.opts(nil))
	if err != nil {
		return nil, err
	}
	var out struct {
		Templates []SendGridTemplate `json:"templates"`
		Result    []SendGridTemplate `json:"result"`
	}
	if err := resp.JSON(&out); err != nil {
		return nil, err
	}
	if out.Templates != nil {
		return out.Templates, nil
	}
	return out.Result, nil
}

// UpdateTemplate renames a template
func (c *SendGridClient) UpdateTemplate(ctx context.Context, templateID, name string) (*SendGridTemplate, error) {
	resp, err := c.Patch(ctx, fmt.Sprintf("/templates/%s", templateID), c.opts(map[string]string{"name": name}))
	if err != nil {
		return nil, err
	}
	var out SendGridTemplate
	if err := resp.JSON(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplate deletes a template
func (c *SendGridClient) DeleteTemplate(ctx context.Context, templateID string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/templates/%s", templateID), c.opts(nil))
	return err
}
