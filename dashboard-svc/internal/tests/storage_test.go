package tests

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"cantina-feedback/dashboard-svc/internal/domain"
	"cantina-feedback/dashboard-svc/internal/mocks"
	"cantina-feedback/dashboard-svc/internal/service"
	"cantina-feedback/dashboard-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	_, err := store.Load(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	state := domain.ViewState{View: domain.ViewDetail, SelectedCanteen: "A", Filter: domain.FilterPositive}
	require.NoError(t, store.Save(ctx, "s-1", state))

	got, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	store := storage.NewRedisStore(rdb, time.Hour)

	_, err := store.Load(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	state := domain.ViewState{View: domain.ViewComparison, SelectedCanteen: "B", Filter: domain.FilterAll}
	require.NoError(t, store.Save(ctx, "s-1", state))

	assert.True(t, mr.Exists("dashboard:session:s-1"))
	assert.Equal(t, time.Hour, mr.TTL("dashboard:session:s-1"))

	got, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, state, got)

	mr.FastForward(2 * time.Hour)
	_, err = store.Load(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	require.NoError(t, mr.Set("dashboard:session:s-1", "not json"))

	_, err := storage.NewRedisStore(rdb, time.Hour).Load(context.Background(), "s-1")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrSessionNotFound))
}

// checkStoreUpdate runs two slow updates on one session at a time and expects
// neither write to be lost.
func checkStoreUpdate(t *testing.T, store service.StateStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Update(ctx, "missing", func(s domain.ViewState) (domain.ViewState, error) { return s, nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, "s-1", domain.InitialViewState()))
	_, err = store.Update(ctx, "s-1", func(s domain.ViewState) (domain.ViewState, error) {
		s.View = domain.ViewDetail
		return s, domain.ErrUnknownView
	})
	assert.ErrorIs(t, err, domain.ErrUnknownView)
	got, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialViewState(), got)

	slow := func(change func(*domain.ViewState)) func(domain.ViewState) (domain.ViewState, error) {
		return func(s domain.ViewState) (domain.ViewState, error) {
			time.Sleep(time.Millisecond)
			change(&s)
			return s, nil
		}
	}

	for i := 0; i < 20; i++ {
		require.NoError(t, store.Save(ctx, "s-2", domain.InitialViewState()))

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "s-2", slow(func(s *domain.ViewState) { s.SelectedCanteen = "B" }))
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "s-2", slow(func(s *domain.ViewState) { s.Filter = domain.FilterNegative }))
			errs <- err
		}()
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		got, err := store.Load(ctx, "s-2")
		require.NoError(t, err)
		assert.Equal(t, "B", got.SelectedCanteen)
		assert.Equal(t, domain.FilterNegative, got.Filter)
	}
}

func TestMemoryStore_Update(t *testing.T) {
	checkStoreUpdate(t, storage.NewMemoryStore())
}

func TestRedisStore_Update(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	store := storage.NewRedisStore(rdb, time.Hour)
	checkStoreUpdate(t, store)
	assert.Equal(t, time.Hour, mr.TTL("dashboard:session:s-2"))
}

func TestPostgresSource(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	source := storage.NewPostgresSource(db)

	tests := []struct {
		name         string
		prepareMocks func()
		wantErr      error
		wantPayload  string
	}{
		{
			name: "found",
			prepareMocks: func() {
				sqlMock.ExpectQuery("SELECT payload FROM feedback_datasets").
					WithArgs("medias_por_cantina").
					WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`[]`)))
			},
			wantPayload: `[]`,
		},
		{
			name: "query error",
			prepareMocks: func() {
				sqlMock.ExpectQuery("SELECT payload FROM feedback_datasets").
					WithArgs("medias_por_cantina").
					WillReturnError(sqlmock.ErrCancelled)
			},
			wantErr: sqlmock.ErrCancelled,
		},
		{
			name: "no rows",
			prepareMocks: func() {
				sqlMock.ExpectQuery("SELECT payload FROM feedback_datasets").
					WithArgs("medias_por_cantina").
					WillReturnRows(sqlmock.NewRows([]string{"payload"}))
			},
			wantErr: domain.ErrMalformedDataset,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			payload, err := source.Read(context.Background(), "medias_por_cantina")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.wantPayload, string(payload))
			}
		})
	}
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestKafkaPublisher(t *testing.T) {
	writer := mocks.NewMessageWriter(t)
	publisher := storage.NewKafkaPublisher(writer)

	event := domain.SelectionEvent{
		Type:      domain.EventSelectCanteen,
		SessionID: "s-1",
		View:      domain.ViewDetail,
		Canteen:   "A",
		Filter:    domain.FilterAll,
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msg kafka.Message) bool {
		var decoded domain.SelectionEvent
		if err := json.Unmarshal(msg.Value, &decoded); err != nil {
			return false
		}
		return string(msg.Key) == "s-1" && decoded.Canteen == "A" && decoded.View == domain.ViewDetail
	})).Return(nil).Once()

	assert.NoError(t, publisher.PublishSelection(context.Background(), event))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := mocks.NewMessageWriter(t)
	publisher := storage.NewKafkaPublisher(writer)

	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

	err := publisher.PublishSelection(context.Background(), domain.SelectionEvent{SessionID: "s-1"})
	assert.ErrorContains(t, err, "leader not available")
}
