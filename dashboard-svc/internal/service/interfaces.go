package service

import (
	"context"

	"cantina-feedback/dashboard-svc/internal/domain"
)

type DashboardInterface interface {
	Overview() domain.OverviewModel
	Comparison() domain.ComparisonModel
	Canteens() []string
	Detail(canteen string, filter domain.Filter) (domain.DetailModel, error)
	ShareCode(canteen string) ([]byte, error)
	NewSession(ctx context.Context) (domain.SessionResponse, error)
	Session(ctx context.Context, sessionID string) (domain.SessionResponse, error)
	Apply(ctx context.Context, sessionID string, event domain.Event) (domain.SessionResponse, error)
}

// StateStore keeps one view state per session. Load and Update return
// domain.ErrSessionNotFound for an unknown session.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (domain.ViewState, error)
	Save(ctx context.Context, sessionID string, state domain.ViewState) error
	// Update applies fn to the stored state atomically. An error from fn
	// leaves the stored state untouched and is returned as is.
	Update(ctx context.Context, sessionID string, fn func(domain.ViewState) (domain.ViewState, error)) (domain.ViewState, error)
}

type SelectionPublisher interface {
	PublishSelection(ctx context.Context, event domain.SelectionEvent) error
}

type ShareCodeGenerator interface {
	Generate(canteen string) ([]byte, error)
}

type TransitionRecorder interface {
	ObserveTransition(eventType string, view domain.View)
}

var _ DashboardInterface = (*DashboardService)(nil)
