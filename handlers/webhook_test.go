package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedMessage struct {
	sender string
	text   string
}

type fakeEngine struct {
	handled []recordedMessage
	err     error
}

func (f *fakeEngine) HandleMessage(_ context.Context, sender, text string) error {
	f.handled = append(f.handled, recordedMessage{sender: sender, text: text})
	return f.err
}

func newTestRouter(engine *fakeEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewWebhookHandler(engine, "topsecret", zap.NewNop())
	r.GET("/webhook", h.VerifyHandler)
	r.POST("/webhook", h.ReceiveHandler)
	return r
}

func TestVerifyHandshakeSucceeds(t *testing.T) {
	router := newTestRouter(&fakeEngine{})

	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=topsecret&hub.challenge=12345", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", w.Body.String())
}

func TestVerifyHandshakeRejectsBadToken(t *testing.T) {
	router := newTestRouter(&fakeEngine{})

	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReceiveDispatchesTextToEngine(t *testing.T) {
	engine := &fakeEngine{}
	router := newTestRouter(engine)

	body := `{
		"object": "whatsapp_business_account",
		"entry": [{
			"id": "100",
			"changes": [{
				"field": "messages",
				"value": {
					"messaging_product": "whatsapp",
					"messages": [{"from": "15550001", "id": "wamid.1", "type": "text", "text": {"body": " book "}}]
				}
			}]
		}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, engine.handled, 1)
	assert.Equal(t, "15550001", engine.handled[0].sender)
	assert.Equal(t, "book", engine.handled[0].text)
}

func TestReceiveAcksMalformedPayload(t *testing.T) {
	engine := &fakeEngine{}
	router := newTestRouter(engine)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, engine.handled)
}

func TestReceiveAcksEnvelopeWithoutMessages(t *testing.T) {
	engine := &fakeEngine{}
	router := newTestRouter(engine)

	body := `{"object": "whatsapp_business_account", "entry": [{"id": "100", "changes": [{"field": "statuses", "value": {"messaging_product": "whatsapp"}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, engine.handled)
}

func TestReceiveAcksDespiteEngineFailure(t *testing.T) {
	engine := &fakeEngine{err: assert.AnError}
	router := newTestRouter(engine)

	body := `{"entry": [{"changes": [{"value": {"messages": [{"from": "15550001", "text": {"body": "702"}}]}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, engine.handled, 1)
}
