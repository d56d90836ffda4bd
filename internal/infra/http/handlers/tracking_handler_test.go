package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/http/handlers"
	"github.com/tikaramspirits/tikaram-api/internal/infra/integration/geoip"
	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

// MockGeoLookup
type MockGeoLookup struct {
	mock.Mock
}

func (m *MockGeoLookup) Lookup(ctx context.Context) (geoip.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).(geoip.Location), args.Error(1)
}

// MockTrafficLogRepository
type MockTrafficLogRepository struct {
	mock.Mock
}

func (m *MockTrafficLogRepository) Create(ctx context.Context, logRow *entity.TrafficLog) error {
	args := m.Called(ctx, logRow)
	return args.Error(0)
}

func newTrackingHandler(geo *MockGeoLookup, traffic *MockTrafficLogRepository) *handlers.TrackingHandler {
	return handlers.NewTrackingHandler(usecase.NewTrackVisitUseCase(geo, traffic))
}

func TestTrackingHandlerSuccess(t *testing.T) {
	mockGeo := new(MockGeoLookup)
	mockTraffic := new(MockTrafficLogRepository)

	mockGeo.On("Lookup", mock.Anything).Return(geoip.Location{City: "Orlando", Postal: "32801"}, nil)
	mockTraffic.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newTrackingHandler(mockGeo, mockTraffic)

	body := bytes.NewReader([]byte(`{"path":"/spirits/florida-bourbon"}`))
	req := httptest.NewRequest("POST", "/track-location", body)
	req.Header.Set("X-Session-ID", "sess-1")
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "32801", response["zip_code"])
	assert.Equal(t, "Orlando", response["city"])

	mockTraffic.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(row *entity.TrafficLog) bool {
		return row.Path == "/spirits/florida-bourbon"
	}))
}

// Everything underneath can fail and the browser still gets 200 with the
// fallback tuple.
func TestTrackingHandlerNeverFails(t *testing.T) {
	mockGeo := new(MockGeoLookup)
	mockTraffic := new(MockTrafficLogRepository)

	mockGeo.On("Lookup", mock.Anything).Return(geoip.Location{}, errors.New("upstream timeout"))
	mockTraffic.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	handler := newTrackingHandler(mockGeo, mockTraffic)

	req := httptest.NewRequest("POST", "/track-location", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "33606", response["zip_code"])
	assert.Equal(t, "Tampa", response["city"])
}

// Without a session header or cookie, the handler mints a session and hands
// it back as a cookie.
func TestTrackingHandlerSetsSessionCookie(t *testing.T) {
	mockGeo := new(MockGeoLookup)
	mockTraffic := new(MockTrafficLogRepository)

	mockGeo.On("Lookup", mock.Anything).Return(geoip.Fallback(), nil)
	mockTraffic.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newTrackingHandler(mockGeo, mockTraffic)

	req := httptest.NewRequest("POST", "/track-location", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "tikaram_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestTrackingHandlerKeepsProvidedSession(t *testing.T) {
	mockGeo := new(MockGeoLookup)
	mockTraffic := new(MockTrafficLogRepository)

	mockGeo.On("Lookup", mock.Anything).Return(geoip.Fallback(), nil)
	mockTraffic.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newTrackingHandler(mockGeo, mockTraffic)

	req := httptest.NewRequest("POST", "/track-location", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Empty(t, w.Result().Cookies())
}
