package domain

type SentimentSlice struct {
	Label    SentimentLabel `json:"label"`
	Raw      string         `json:"raw"`
	Category string         `json:"category"`
	Count    int            `json:"count"`
}

type OverviewModel struct {
	TotalReviews  int              `json:"total_reviews"`
	CanteenCount  int              `json:"canteen_count"`
	GlobalMean    *float64         `json:"global_mean"`
	MeanAvailable bool             `json:"mean_available"`
	Sentiment     []SentimentSlice `json:"sentiment"`
	// SentimentTotal is the sum of Sentiment counts, the pie chart denominator.
	SentimentTotal int `json:"sentiment_total"`
}

type ComparisonRow struct {
	CanteenAverages
	ReviewCount int              `json:"review_count"`
	Sentiment   []SentimentSlice `json:"sentiment"`
}

type ComparisonModel struct {
	Rows []ComparisonRow `json:"rows"`
}

type CategoryScore struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type DetailModel struct {
	Canteen        string            `json:"canteen"`
	Averages       CanteenAverages   `json:"averages"`
	ReviewCount    int               `json:"review_count"`
	Categories     []CategoryScore   `json:"categories"`
	Sentiment      []SentimentSlice  `json:"sentiment"`
	SentimentTotal int               `json:"sentiment_total"`
	Filter         Filter            `json:"filter"`
	FilterOptions  []Filter          `json:"filter_options"`
	Comments       []DetailedComment `json:"comments"`
	TotalComments  int               `json:"total_comments"`
}

// ViewModel carries exactly one of the three models, matching View.
type ViewModel struct {
	View       View             `json:"view"`
	Overview   *OverviewModel   `json:"overview,omitempty"`
	Comparison *ComparisonModel `json:"comparison,omitempty"`
	Detail     *DetailModel     `json:"detail,omitempty"`
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	State     ViewState `json:"state"`
	ViewModel ViewModel `json:"view_model"`
}

// Event is a user selection. Only the field matching Type is read.
type Event struct {
	Type    string `json:"type"`
	View    string `json:"view,omitempty"`
	Canteen string `json:"canteen,omitempty"`
	Filter  string `json:"filter,omitempty"`
}

const (
	EventSelectView    = "select_view"
	EventSelectCanteen = "select_canteen"
	EventSelectFilter  = "select_filter"
)
