package service

import (
	"fmt"

	"cantina-feedback/dashboard-svc/internal/domain"
)

// Transition applies one selection event to a view state. It is pure: the
// input state is never modified, and on error the input state is returned.
// Selecting a view keeps the canteen and filter chosen earlier.
func Transition(state domain.ViewState, event domain.Event) (domain.ViewState, error) {
	next := state
	switch event.Type {
	case domain.EventSelectView:
		view, err := domain.ParseView(event.View)
		if err != nil {
			return state, fmt.Errorf("%w: %q", err, event.View)
		}
		next.View = view
	case domain.EventSelectCanteen:
		if event.Canteen == "" {
			return state, fmt.Errorf("%w: empty name", domain.ErrUnknownCanteen)
		}
		next.SelectedCanteen = event.Canteen
	case domain.EventSelectFilter:
		filter, err := domain.ParseFilter(event.Filter)
		if err != nil {
			return state, fmt.Errorf("%w: %q", err, event.Filter)
		}
		next.Filter = filter
	default:
		return state, fmt.Errorf("%w: %q", domain.ErrUnknownEvent, event.Type)
	}
	return next, nil
}

// ResolveCanteen returns the canteen the detail view shows: the selected one,
// or the first canteen in load order when nothing was selected yet.
func ResolveCanteen(state domain.ViewState, canteens []string) (string, bool) {
	if state.SelectedCanteen != "" {
		return state.SelectedCanteen, true
	}
	if len(canteens) == 0 {
		return "", false
	}
	return canteens[0], true
}
