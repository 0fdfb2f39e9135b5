package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cantina-feedback/dashboard-svc/internal/domain"
	"cantina-feedback/logger"

	"github.com/google/uuid"
)

type DashboardService struct {
	agg       *Aggregator
	store     StateStore
	publisher SelectionPublisher
	share     ShareCodeGenerator
	recorder  TransitionRecorder
	newID     func() string
}

// NewDashboardService wires the dashboard. publisher and share may be nil.
func NewDashboardService(agg *Aggregator, store StateStore, publisher SelectionPublisher, share ShareCodeGenerator) *DashboardService {
	return &DashboardService{
		agg:       agg,
		store:     store,
		publisher: publisher,
		share:     share,
		newID:     uuid.NewString,
	}
}

func (s *DashboardService) WithRecorder(r TransitionRecorder) *DashboardService {
	s.recorder = r
	return s
}

func (s *DashboardService) Overview() domain.OverviewModel {
	global := s.agg.GlobalSentiment()
	model := domain.OverviewModel{
		TotalReviews:   s.agg.TotalReviews(),
		CanteenCount:   s.agg.CanteenCount(),
		Sentiment:      slices(global),
		SentimentTotal: global.Total(),
	}
	if mean, err := s.agg.GlobalMeanOverall(); err == nil {
		model.GlobalMean = &mean
		model.MeanAvailable = true
	}
	return model
}

func (s *DashboardService) Comparison() domain.ComparisonModel {
	rows := make([]domain.ComparisonRow, 0, s.agg.CanteenCount())
	for _, avg := range s.agg.Averages() {
		rows = append(rows, domain.ComparisonRow{
			CanteenAverages: avg,
			ReviewCount:     s.agg.FindReviewCount(avg.Canteen).ReviewCount,
			Sentiment:       slices(s.agg.FindSentiment(avg.Canteen)),
		})
	}
	return domain.ComparisonModel{Rows: rows}
}

func (s *DashboardService) Canteens() []string {
	return s.agg.Canteens()
}

func (s *DashboardService) Detail(canteen string, filter domain.Filter) (domain.DetailModel, error) {
	if !s.agg.HasCanteen(canteen) {
		return domain.DetailModel{}, fmt.Errorf("%w: %q", domain.ErrUnknownCanteen, canteen)
	}
	if !filter.Valid() {
		return domain.DetailModel{}, fmt.Errorf("%w: %q", domain.ErrUnknownFilter, filter)
	}
	return s.detail(canteen, filter), nil
}

func (s *DashboardService) detail(canteen string, filter domain.Filter) domain.DetailModel {
	avg := s.agg.FindAverages(canteen)
	all := s.agg.FindComments(canteen)
	sentiment := s.agg.FindSentiment(canteen)
	return domain.DetailModel{
		Canteen:     canteen,
		Averages:    avg,
		ReviewCount: s.agg.FindReviewCount(canteen).ReviewCount,
		Categories: []domain.CategoryScore{
			{Category: "Hygiene", Value: avg.Hygiene},
			{Category: "Price", Value: avg.Price},
			{Category: "Service", Value: avg.Service},
		},
		Sentiment:      slices(sentiment),
		SentimentTotal: sentiment.Total(),
		Filter:         filter,
		FilterOptions:  domain.FilterOptions,
		Comments:       FilterComments(all, filter),
		TotalComments:  len(all),
	}
}

func (s *DashboardService) ShareCode(canteen string) ([]byte, error) {
	if !s.agg.HasCanteen(canteen) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCanteen, canteen)
	}
	if s.share == nil {
		return nil, errors.New("share codes are not configured")
	}
	return s.share.Generate(canteen)
}

// ViewModel builds the model of whatever view the state points at.
func (s *DashboardService) ViewModel(state domain.ViewState) domain.ViewModel {
	vm := domain.ViewModel{View: state.View}
	switch state.View {
	case domain.ViewComparison:
		c := s.Comparison()
		vm.Comparison = &c
	case domain.ViewDetail:
		var d domain.DetailModel
		if canteen, ok := ResolveCanteen(state, s.agg.Canteens()); ok {
			d = s.detail(canteen, state.Filter)
		} else {
			d = domain.DetailModel{
				Filter:        state.Filter,
				FilterOptions: domain.FilterOptions,
				Categories:    []domain.CategoryScore{},
				Sentiment:     []domain.SentimentSlice{},
				Comments:      []domain.DetailedComment{},
			}
		}
		vm.Detail = &d
	default:
		o := s.Overview()
		vm.View = domain.ViewOverview
		vm.Overview = &o
	}
	return vm
}

func (s *DashboardService) NewSession(ctx context.Context) (domain.SessionResponse, error) {
	id := s.newID()
	state := domain.InitialViewState()
	if err := s.store.Save(ctx, id, state); err != nil {
		return domain.SessionResponse{}, fmt.Errorf("failed to save session: %w", err)
	}
	return s.response(id, state), nil
}

func (s *DashboardService) Session(ctx context.Context, sessionID string) (domain.SessionResponse, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return domain.SessionResponse{}, err
	}
	return s.response(sessionID, state), nil
}

func (s *DashboardService) Apply(ctx context.Context, sessionID string, event domain.Event) (domain.SessionResponse, error) {
	next, err := s.store.Update(ctx, sessionID, func(state domain.ViewState) (domain.ViewState, error) {
		if event.Type == domain.EventSelectCanteen && !s.agg.HasCanteen(event.Canteen) {
			return state, fmt.Errorf("%w: %q", domain.ErrUnknownCanteen, event.Canteen)
		}
		return Transition(state, event)
	})
	if err != nil {
		return domain.SessionResponse{}, err
	}

	if s.recorder != nil {
		s.recorder.ObserveTransition(event.Type, next.View)
	}
	s.publish(ctx, sessionID, event.Type, next)

	return s.response(sessionID, next), nil
}

func (s *DashboardService) publish(ctx context.Context, sessionID, eventType string, state domain.ViewState) {
	if s.publisher == nil {
		return
	}
	canteen, _ := ResolveCanteen(state, s.agg.Canteens())
	err := s.publisher.PublishSelection(ctx, domain.SelectionEvent{
		Type:      eventType,
		SessionID: sessionID,
		View:      state.View,
		Canteen:   canteen,
		Filter:    state.Filter,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.Get().Warn().Err(err).Str("session_id", sessionID).Msg("failed to publish selection event")
	}
}

func (s *DashboardService) response(id string, state domain.ViewState) domain.SessionResponse {
	return domain.SessionResponse{
		SessionID: id,
		State:     state,
		ViewModel: s.ViewModel(state),
	}
}

func slices(counts domain.SentimentCounts) []domain.SentimentSlice {
	out := make([]domain.SentimentSlice, 0, len(counts))
	for _, c := range counts {
		out = append(out, domain.SentimentSlice{
			Label:    c.Label,
			Raw:      c.Raw,
			Category: c.Label.Category(),
			Count:    c.Count,
		})
	}
	return out
}
