package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blackboyfilms/studio-api/internal/usecase"
)

func captureRequest(body string, ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", ip)
	return req
}

const validLeadJSON = `{
	"name": "Ana Souza",
	"email": "ana@example.com",
	"phone": "(11) 98888-7777",
	"niche": "casamento",
	"message": "Quero um vídeo do meu casamento em outubro.",
	"consent": true
}`

func TestCaptureLeadSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockProducer.On("PublishLeadEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo, mockProducer, nil))

	rec := httptest.NewRecorder()
	h.CaptureLead(rec, captureRequest(validLeadJSON, "203.0.113.1"))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CaptureLeadResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
}

func TestCaptureLeadMalformedJSON(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	h := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo, mockProducer, nil))

	rec := httptest.NewRecorder()
	h.CaptureLead(rec, captureRequest(`{"name": `, "203.0.113.2"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCaptureLeadValidationErrorsPerField(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	h := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo, mockProducer, nil))

	rec := httptest.NewRecorder()
	h.CaptureLead(rec, captureRequest(`{"name": "Ana", "consent": false}`, "203.0.113.3"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Fields []usecase.ValidationError `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Fields)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestCaptureLeadRateLimited(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockProducer := new(MockLeadEventProducer)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockProducer.On("PublishLeadEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo, mockProducer, nil))

	// Mesmo IP estourando o limite de 10/min.
	var last *httptest.ResponseRecorder
	for i := 0; i < 11; i++ {
		last = httptest.NewRecorder()
		h.CaptureLead(last, captureRequest(validLeadJSON, "203.0.113.9"))
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)

	// IP diferente não é afetado.
	rec := httptest.NewRecorder()
	h.CaptureLead(rec, captureRequest(validLeadJSON, "203.0.113.10"))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(2, -time.Nanosecond) // janela sempre expirada

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("203.0.113.4"), fmt.Sprintf("tentativa %d", i))
	}
}
