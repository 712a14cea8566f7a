package models

import "strings"

// WebhookEnvelope mirrors the WhatsApp Cloud API webhook payload, from the
// top-level object down to individual messages. Only the fields the bot
// reads are declared.
type WebhookEnvelope struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []InboundMessage `json:"messages"`
}

type InboundMessage struct {
	From string       `json:"from"`
	ID   string       `json:"id"`
	Type string       `json:"type"`
	Text *MessageText `json:"text,omitempty"`
}

type MessageText struct {
	Body string `json:"body"`
}

// FirstText extracts the sender identity and trimmed text body from the
// first message of the first change of the first entry. ok is false when
// any level of the envelope is absent or the message carries no text.
func (e WebhookEnvelope) FirstText() (sender, text string, ok bool) {
	if len(e.Entry) == 0 || len(e.Entry[0].Changes) == 0 {
		return "", "", false
	}
	msgs := e.Entry[0].Changes[0].Value.Messages
	if len(msgs) == 0 {
		return "", "", false
	}
	msg := msgs[0]
	if msg.From == "" || msg.Text == nil {
		return "", "", false
	}
	body := strings.TrimSpace(msg.Text.Body)
	if body == "" {
		return "", "", false
	}
	return msg.From, body, true
}
