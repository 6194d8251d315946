package services

import (
	"context"
	"fmt"

	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"go.uber.org/zap"
)

// BirthdayResult reports what a birthday greeting produced
type BirthdayResult struct {
	PostID  string
	Emailed bool
}

// BirthdayService posts a greeting on a page and emails the customer
type BirthdayService struct {
	poster    ports.PagePoster
	mailer    ports.Mailer
	fromEmail string
	logger    *zap.Logger
}

func NewBirthdayService(poster ports.PagePoster, mailer ports.Mailer, fromEmail string, logger *zap.Logger) *BirthdayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BirthdayService{poster: poster, mailer: mailer, fromEmail: fromEmail, logger: logger}
}

// Greet publishes the page post first; the email is skipped when to is empty
func (s *BirthdayService) Greet(ctx context.Context, pageID, to, name string) (*BirthdayResult, error) {
	message := fmt.Sprintf("Happy Birthday, %s! 🎉 Enjoy 20%% off today!", name)
	resp, err := s.poster.CreatePost(ctx, pageID, message)
	if err != nil {
		return nil, fmt.Errorf("facebook post: %w", err)
	}

	result := &BirthdayResult{}
	if id, ok := resp["id"].(string); ok {
		result.PostID = id
	}
	s.logger.Info("birthday post created", zap.String("page_id", pageID), zap.String("post_id", result.PostID))

	if to == "" {
		return result, nil
	}
	err = s.mailer.Send(ctx, ports.Email{
		From:    s.fromEmail,
		To:      to,
		Subject: "Happy Birthday from Genius CRM 🎂",
		Body:    fmt.Sprintf("Hi %s,\n\nWe hope you have an amazing day!", name),
	})
	if err != nil {
		return result, fmt.Errorf("birthday email: %w", err)
	}
	result.Emailed = true
	return result, nil
}
