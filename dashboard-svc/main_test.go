package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"cantina-feedback/config"
	"cantina-feedback/dashboard-svc/internal/dataset"
	"cantina-feedback/dashboard-svc/internal/domain"
	"cantina-feedback/dashboard-svc/internal/service"
	"cantina-feedback/dashboard-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		DatasetSource: config.SourceEmbedded,
		SessionTTL:    time.Hour,
		PublicBaseURL: "http://dashboard.local",
	}
}

func embeddedAggregator(t *testing.T) *service.Aggregator {
	t.Helper()
	data, err := dataset.NewLoader(dataset.Embedded()).Load(context.Background())
	require.NoError(t, err)
	return service.NewAggregator(data)
}

func TestNewSource(t *testing.T) {
	src, err := newSource(&config.Config{DatasetSource: config.SourceEmbedded}, nil)
	require.NoError(t, err)
	assert.IsType(t, dataset.FSSource{}, src)

	src, err = newSource(&config.Config{DatasetSource: config.SourceDir, DatasetDir: t.TempDir()}, nil)
	require.NoError(t, err)
	assert.IsType(t, dataset.FSSource{}, src)

	_, err = newSource(&config.Config{DatasetSource: config.SourcePostgres}, nil)
	assert.Error(t, err)

	_, err = newSource(&config.Config{DatasetSource: "s3"}, nil)
	assert.Error(t, err)
}

func TestNewSource_PostgresLoadsDocuments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	embedded := dataset.Embedded()
	for _, name := range dataset.Documents {
		payload, err := embedded.Read(context.Background(), name)
		require.NoError(t, err)
		mock.ExpectQuery("SELECT payload FROM feedback_datasets").
			WithArgs(name).
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))
	}

	src, err := newSource(&config.Config{DatasetSource: config.SourcePostgres}, db)
	require.NoError(t, err)

	data, err := dataset.NewLoader(src).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Averages, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_OverviewAndMetrics(t *testing.T) {
	app := newApp(testConfig(), embeddedAggregator(t), storage.NewMemoryStore(), nil)

	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/overview", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var overview domain.OverviewModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &overview))
	assert.Equal(t, 104, overview.TotalReviews)
	assert.Equal(t, 3, overview.CanteenCount)
	require.True(t, overview.MeanAvailable)
	assert.InDelta(t, 3.9333333333, *overview.GlobalMean, 1e-6)

	rr = httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cantina_dashboard_http_requests_total")
}

func TestApp_QRCode(t *testing.T) {
	app := newApp(testConfig(), embeddedAggregator(t), storage.NewMemoryStore(), nil)

	rr := httptest.NewRecorder()
	path := "/api/canteens/" + url.PathEscape("Cantina Central") + "/qrcode"
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

func TestApp_SessionFlowWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	app := newApp(testConfig(), embeddedAggregator(t), storage.NewRedisStore(rdb, time.Hour), nil)

	rr := httptest.NewRecorder()
	app.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	var created domain.SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created.SessionID)
	assert.True(t, mr.Exists(storage.SessionKey(created.SessionID)))

	post := func(body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+created.SessionID+"/events", strings.NewReader(body))
		app.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusOK, post(`{"type":"select_view","view":"detail"}`).Code)
	require.Equal(t, http.StatusOK, post(`{"type":"select_canteen","canteen":"Cantina do Bloco C"}`).Code)
	rr = post(`{"type":"select_filter","filter":"Negativo"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp domain.SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.ViewModel.Detail)
	assert.Equal(t, "Cantina do Bloco C", resp.ViewModel.Detail.Canteen)
	assert.Equal(t, domain.FilterNegative, resp.ViewModel.Detail.Filter)
	assert.Len(t, resp.ViewModel.Detail.Comments, 1)

	assert.Equal(t, http.StatusNotFound, post(`{"type":"select_canteen","canteen":"Nowhere"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"type":"select_view","view":"settings"}`).Code)
}
