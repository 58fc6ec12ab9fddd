package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jojocolaresbeauty/config"
)

// WhatsAppService is the production NotificationService, talking to the
// whaply-style HTTP gateway.
type WhatsAppService struct {
	apiURL string
	apiKey string
	sender string
	client *http.Client
}

// NewWhatsAppService builds a WhatsAppService from the loaded configuration.
func NewWhatsAppService() (*WhatsAppService, error) {
	cfg := config.AppConfig
	if cfg.WhatsAppAPIURL == "" || cfg.WhatsAppAPIKey == "" || cfg.WhatsAppSender == "" {
		return nil, fmt.Errorf("whatsapp gateway configuration incomplete")
	}
	return &WhatsAppService{
		apiURL: strings.TrimRight(cfg.WhatsAppAPIURL, "/"),
		apiKey: cfg.WhatsAppAPIKey,
		sender: cfg.WhatsAppSender,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SendMessage delivers a plain text message with an optional footer.
func (s *WhatsAppService) SendMessage(ctx context.Context, number, message, footer string) error {
	body := map[string]string{
		"api_key": s.apiKey,
		"sender":  s.sender,
		"number":  number,
		"message": message,
	}
	if footer != "" {
		body["footer"] = footer
	}
	return s.post(ctx, "/send-message", body)
}

// SendVCard delivers a contact card for the given name and phone.
func (s *WhatsAppService) SendVCard(ctx context.Context, number, name, phone string) error {
	body := map[string]string{
		"api_key": s.apiKey,
		"sender":  s.sender,
		"number":  number,
		"name":    name,
		"phone":   phone,
	}
	return s.post(ctx, "/send-vcard", body)
}

func (s *WhatsAppService) post(ctx context.Context, path string, body map[string]string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// NormalizePhone strips every non-digit character and prefixes the country
// code when the remaining number has 11 digits or fewer. Numbers already
// carrying a country code pass through unchanged; no further validation is
// applied to malformed input.
func NormalizePhone(raw, countryCode string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if len(clean) <= 11 {
		clean = countryCode + clean
	}
	return clean
}
