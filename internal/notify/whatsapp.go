package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WhatsAppConfig configures the Interakt template-message sender.
// Interakt has no Go SDK; the integration is a single REST call.
type WhatsAppConfig struct {
	APIKey       string
	BaseURL      string
	TemplateName string
	CountryCode  string
}

type WhatsAppSender struct {
	cfg  WhatsAppConfig
	http *http.Client
}

func NewWhatsAppSender(cfg WhatsAppConfig) (*WhatsAppSender, error) {
	if cfg.APIKey == "" || cfg.BaseURL == "" {
		return nil, errors.New("interakt api key and base url are required")
	}
	if cfg.TemplateName == "" {
		cfg.TemplateName = "logincode"
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = "+91"
	}

	return &WhatsAppSender{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type interaktTemplate struct {
	Name         string   `json:"name"`
	LanguageCode string   `json:"languageCode"`
	HeaderValues []string `json:"headerValues"`
	BodyValues   []string `json:"bodyValues"`
}

type interaktMessage struct {
	CountryCode string           `json:"countryCode"`
	PhoneNumber string           `json:"phoneNumber"`
	Type        string           `json:"type"`
	Template    interaktTemplate `json:"template"`
}

func (s *WhatsAppSender) SendCode(ctx context.Context, phone, code string) error {
	body, err := json.Marshal(interaktMessage{
		CountryCode: s.cfg.CountryCode,
		PhoneNumber: phone,
		Type:        "Template",
		Template: interaktTemplate{
			Name:         s.cfg.TemplateName,
			LanguageCode: "en",
			HeaderValues: []string{"Alert"},
			BodyValues:   []string{code},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode whatsapp message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+s.cfg.APIKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("interakt error: status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
