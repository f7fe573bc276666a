package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"barberbook/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBotService struct {
	result *Result
	err    error
	got    *WebhookRequest
}

func (s *stubBotService) HandleMessage(ctx context.Context, req WebhookRequest) (*Result, error) {
	s.got = &req
	return s.result, s.err
}

func newWebhookRouter(svc BotService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/whatsapp", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleWebhook_OK(t *testing.T) {
	stub := &stubBotService{result: &Result{Step: domain.StepMenu, Reply: "Olá!"}}
	r := newWebhookRouter(stub)

	w := postWebhook(t, r, gin.H{
		"instanceId": "inst-1",
		"msgContent": "oi",
		"sender":     "5511999990000",
		"senderName": "Maria",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "menu", resp["step"])
	assert.Equal(t, "Olá!", resp["message"])

	require.NotNil(t, stub.got)
	assert.Equal(t, "Maria", stub.got.SenderName)
}

func TestHandleWebhook_CancelledEnvelope(t *testing.T) {
	stub := &stubBotService{result: &Result{Cancelled: true, Step: domain.StepWelcome, Reply: "cancelado"}}
	r := newWebhookRouter(stub)

	w := postWebhook(t, r, gin.H{
		"instanceId": "inst-1",
		"msgContent": "0",
		"sender":     "5511999990000",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "cancelled", resp["action"])
	assert.NotContains(t, resp, "step")
}

func TestHandleWebhook_MissingFields(t *testing.T) {
	stub := &stubBotService{result: &Result{}}
	r := newWebhookRouter(stub)

	for _, body := range []gin.H{
		{},
		{"instanceId": "inst-1"},
		{"instanceId": "inst-1", "msgContent": "oi"},
		{"msgContent": "oi", "sender": "5511999990000"},
	} {
		w := postWebhook(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, stub.got, "service must not be called on bad payloads")
	}
}

func TestHandleWebhook_UnknownInstance(t *testing.T) {
	stub := &stubBotService{err: ErrShopNotFound}
	r := newWebhookRouter(stub)

	w := postWebhook(t, r, gin.H{
		"instanceId": "ghost",
		"msgContent": "oi",
		"sender":     "5511999990000",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestHandleWebhook_InternalError(t *testing.T) {
	stub := &stubBotService{err: errors.New("redis down")}
	r := newWebhookRouter(stub)

	w := postWebhook(t, r, gin.H{
		"instanceId": "inst-1",
		"msgContent": "oi",
		"sender":     "5511999990000",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
