package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

// MockAnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Analytics(ctx context.Context, since time.Time) (*entity.LeadAnalytics, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadAnalytics), args.Error(1)
}

func (m *MockAnalyticsRepository) CountStaleNew(ctx context.Context, olderThan time.Time) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}

func TestAnalyticsSummaryDefaultWindow(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("Analytics", mock.Anything, mock.Anything).Return(&entity.LeadAnalytics{
		Total:          12,
		New:            5,
		InProgress:     4,
		Closed:         2,
		Lost:           1,
		ConversionRate: 16.7,
	}, nil)

	h := NewAnalyticsHandler(mockRepo)

	rec := httptest.NewRecorder()
	h.HandleSummary(rec, httptest.NewRequest(http.MethodGet, "/admin/analytics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		PeriodDays int                  `json:"period_days"`
		Summary    entity.LeadAnalytics `json:"summary"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.PeriodDays)
	assert.Equal(t, 12, resp.Summary.Total)
	assert.Equal(t, 16.7, resp.Summary.ConversionRate)
}

func TestAnalyticsSummaryCustomWindow(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("Analytics", mock.Anything, mock.Anything).Return(&entity.LeadAnalytics{}, nil)

	h := NewAnalyticsHandler(mockRepo)

	rec := httptest.NewRecorder()
	h.HandleSummary(rec, httptest.NewRequest(http.MethodGet, "/admin/analytics?days=7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		PeriodDays int `json:"period_days"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.PeriodDays)
}

func TestAnalyticsSummaryRejectsBadWindow(t *testing.T) {
	mockRepo := new(MockAnalyticsRepository)
	h := NewAnalyticsHandler(mockRepo)

	for _, query := range []string{"days=0", "days=-3", "days=366", "days=abc"} {
		rec := httptest.NewRecorder()
		h.HandleSummary(rec, httptest.NewRequest(http.MethodGet, "/admin/analytics?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
	mockRepo.AssertNotCalled(t, "Analytics")
}
