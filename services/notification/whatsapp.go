package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WhatsAppSink is the production Sink, backed by the WhatsApp Cloud API
// messages endpoint.
type WhatsAppSink struct {
	Token         string
	PhoneNumberID string
	BaseURL       string
	HTTPClient    *http.Client
}

func NewWhatsAppSink(token, phoneNumberID, baseURL string) *WhatsAppSink {
	return &WhatsAppSink{
		Token:         token,
		PhoneNumberID: phoneNumberID,
		BaseURL:       baseURL,
		HTTPClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

type outboundMessage struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Text             messageBody `json:"text"`
}

type messageBody struct {
	Body string `json:"body"`
}

func (s *WhatsAppSink) Send(ctx context.Context, recipient, text string) error {
	payload, err := json.Marshal(outboundMessage{
		MessagingProduct: "whatsapp",
		To:               recipient,
		Text:             messageBody{Body: text},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.BaseURL, s.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build outbound request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver message to %s: %w", recipient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("message delivery to %s failed with status %d: %s", recipient, resp.StatusCode, body)
	}
	return nil
}
