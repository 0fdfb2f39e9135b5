package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "cantina-feedback/usage-svc/internal/api/http"
	"cantina-feedback/usage-svc/internal/domain"
	"cantina-feedback/usage-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockStore *mocks.UsageStore) *mux.Router {
	handler := httpapi.NewHandler(mockStore)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_getSummary(t *testing.T) {
	mockStore := mocks.NewUsageStore(t)
	router := setupTestRouter(mockStore)

	tests := []struct {
		name         string
		url          string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "default limit",
			url:  "/api/usage",
			prepareMocks: func() {
				mockStore.On("Summary", mock.Anything, int64(10)).Return(domain.UsageSummary{
					Views:    map[string]int64{"detail": 3},
					Canteens: []domain.CanteenUsage{{Canteen: "A", Selections: 2}},
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"canteen":"A"`,
		},
		{
			name: "custom limit",
			url:  "/api/usage?limit=3",
			prepareMocks: func() {
				mockStore.On("Summary", mock.Anything, int64(3)).Return(domain.UsageSummary{}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad limit",
			url:          "/api/usage?limit=-1",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store error",
			url:  "/api/usage",
			prepareMocks: func() {
				mockStore.On("Summary", mock.Anything, int64(10)).Return(domain.UsageSummary{}, errors.New("redis down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest("GET", testCase.url, nil))
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getDaily(t *testing.T) {
	mockStore := mocks.NewUsageStore(t)
	router := setupTestRouter(mockStore)

	mockStore.On("TopCanteensOn", mock.Anything, "2024-05-01", int64(10)).
		Return([]domain.CanteenUsage{{Canteen: "B", Selections: 4}}, nil).Once()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/usage/daily/2024-05-01", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"day":"2024-05-01"`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/usage/daily/yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
