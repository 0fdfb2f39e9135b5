package service

import (
	"cantina-feedback/dashboard-svc/internal/domain"
	"cantina-feedback/dashboard-svc/internal/lookup"
)

// Aggregator answers read-only questions over the loaded datasets. Joins are
// by exact canteen name and fall back to zero values on a miss.
type Aggregator struct {
	data      *domain.Datasets
	averages  lookup.Index[string, domain.CanteenAverages]
	counts    lookup.Index[string, domain.CanteenReviewCount]
	sentiment lookup.Index[string, domain.CanteenSentiment]
	comments  map[string][]domain.DetailedComment
}

func NewAggregator(data *domain.Datasets) *Aggregator {
	if data == nil {
		data = &domain.Datasets{}
	}
	return &Aggregator{
		data: data,
		averages: lookup.NewIndex(data.Averages, func(a domain.CanteenAverages) string {
			return a.Canteen
		}),
		counts: lookup.NewIndex(data.ReviewCounts, func(c domain.CanteenReviewCount) string {
			return c.Canteen
		}),
		sentiment: lookup.NewIndex(data.CanteenSentiment, func(s domain.CanteenSentiment) string {
			return s.Canteen
		}),
		comments: lookup.GroupBy(data.Comments, func(c domain.DetailedComment) string {
			return c.Canteen
		}),
	}
}

func (a *Aggregator) TotalReviews() int {
	total := 0
	for _, c := range a.data.ReviewCounts {
		total += c.ReviewCount
	}
	return total
}

// GlobalMeanOverall returns domain.ErrEmptyDataset when no canteen is loaded.
func (a *Aggregator) GlobalMeanOverall() (float64, error) {
	if len(a.data.Averages) == 0 {
		return 0, domain.ErrEmptyDataset
	}
	sum := 0.0
	for _, avg := range a.data.Averages {
		sum += avg.Overall
	}
	return sum / float64(len(a.data.Averages)), nil
}

func (a *Aggregator) FindAverages(canteen string) domain.CanteenAverages {
	return a.averages.GetOr(canteen, domain.CanteenAverages{Canteen: canteen})
}

func (a *Aggregator) FindReviewCount(canteen string) domain.CanteenReviewCount {
	return a.counts.GetOr(canteen, domain.CanteenReviewCount{Canteen: canteen})
}

func (a *Aggregator) FindSentiment(canteen string) domain.SentimentCounts {
	found := a.sentiment.GetOr(canteen, domain.CanteenSentiment{Canteen: canteen})
	if found.Counts == nil {
		return domain.SentimentCounts{}
	}
	return found.Counts
}

func (a *Aggregator) FindComments(canteen string) []domain.DetailedComment {
	if found, ok := a.comments[canteen]; ok {
		return found
	}
	return []domain.DetailedComment{}
}

// FilterComments keeps input order and never deduplicates. FilterAll returns
// the input unchanged.
func FilterComments(comments []domain.DetailedComment, filter domain.Filter) []domain.DetailedComment {
	label, ok := filter.Label()
	if !ok {
		return comments
	}
	out := make([]domain.DetailedComment, 0, len(comments))
	for _, c := range comments {
		if c.SentimentLabel == label {
			out = append(out, c)
		}
	}
	return out
}

// Canteens lists canteen names in load order of the averages document.
func (a *Aggregator) Canteens() []string {
	names := make([]string, 0, len(a.data.Averages))
	for _, avg := range a.data.Averages {
		names = append(names, avg.Canteen)
	}
	return names
}

func (a *Aggregator) CanteenCount() int {
	return len(a.data.Averages)
}

func (a *Aggregator) HasCanteen(canteen string) bool {
	return a.averages.Has(canteen)
}

func (a *Aggregator) GlobalSentiment() domain.SentimentCounts {
	return a.data.GlobalSentiment
}

func (a *Aggregator) Averages() []domain.CanteenAverages {
	return a.data.Averages
}
