package domain

import "strings"

type View string

const (
	ViewOverview   View = "overview"
	ViewComparison View = "comparison"
	ViewDetail     View = "detail"
)

type Filter string

const (
	FilterAll      Filter = "All"
	FilterPositive Filter = "Positive"
	FilterNegative Filter = "Negative"
	FilterNeutral  Filter = "Neutral"
)

// FilterOptions is the order in which the comment filters are offered.
var FilterOptions = []Filter{FilterAll, FilterPositive, FilterNegative, FilterNeutral}

var viewAliases = map[string]View{
	"overview":   ViewOverview,
	"inicio":     ViewOverview,
	"comparison": ViewComparison,
	"geral":      ViewComparison,
	"detail":     ViewDetail,
	"cantinas":   ViewDetail,
}

var filterAliases = map[string]Filter{
	"all":      FilterAll,
	"todos":    FilterAll,
	"positive": FilterPositive,
	"positivo": FilterPositive,
	"negative": FilterNegative,
	"negativo": FilterNegative,
	"neutral":  FilterNeutral,
	"neutro":   FilterNeutral,
}

func ParseView(raw string) (View, error) {
	if v, ok := viewAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return v, nil
	}
	return "", ErrUnknownView
}

// ParseFilter treats an empty string as FilterAll.
func ParseFilter(raw string) (Filter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FilterAll, nil
	}
	if f, ok := filterAliases[strings.ToLower(raw)]; ok {
		return f, nil
	}
	return "", ErrUnknownFilter
}

func (v View) Valid() bool {
	return v == ViewOverview || v == ViewComparison || v == ViewDetail
}

func (f Filter) Valid() bool {
	for _, opt := range FilterOptions {
		if f == opt {
			return true
		}
	}
	return false
}

// Label returns the sentiment label a filter selects. FilterAll has none.
func (f Filter) Label() (SentimentLabel, bool) {
	switch f {
	case FilterPositive:
		return SentimentPositive, true
	case FilterNegative:
		return SentimentNegative, true
	case FilterNeutral:
		return SentimentNeutral, true
	}
	return "", false
}

// ViewState is one viewer's selector state. SelectedCanteen and Filter survive
// leaving and re-entering the detail view.
type ViewState struct {
	View            View   `json:"view"`
	SelectedCanteen string `json:"selected_canteen,omitempty"`
	Filter          Filter `json:"filter"`
}

func InitialViewState() ViewState {
	return ViewState{View: ViewOverview, Filter: FilterAll}
}
