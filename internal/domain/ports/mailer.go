package ports

import "context"

// Email is an outbound plain-text message
type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer delivers outbound email
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// PagePoster publishes a message to a social page and returns the provider's
// response fields
type PagePoster interface {
	CreatePost(ctx context.Context, pageID, message string) (map[string]interface{}, error)
}
