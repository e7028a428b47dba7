package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// EmailConfig configures the Postmark-backed sender.
type EmailConfig struct {
	ServerToken  string
	AccountToken string
	FromEmail    string
	FromName     string
}

// EmailSender delivers OTP codes over transactional email.
type EmailSender struct {
	client *postmark.Client
	cfg    EmailConfig
}

func NewEmailSender(cfg EmailConfig) (*EmailSender, error) {
	if cfg.ServerToken == "" || cfg.FromEmail == "" {
		return nil, errors.New("postmark server token and sender address are required")
	}

	return &EmailSender{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		cfg:    cfg,
	}, nil
}

func (s *EmailSender) SendCode(ctx context.Context, to, code string) error {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail),
		To:       to,
		Subject:  "OTP for login",
		HTMLBody: fmt.Sprintf("<p>Your login code is <strong>%s</strong>. It expires in 2 minutes.</p>", code),
		Tag:      "login-otp",
	})
	if err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}

	return nil
}
