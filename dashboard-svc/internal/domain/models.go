package domain

import "time"

type CanteenAverages struct {
	Canteen string  `json:"canteen"`
	Overall float64 `json:"overall"`
	Hygiene float64 `json:"hygiene"`
	Price   float64 `json:"price"`
	Service float64 `json:"service"`
}

type CanteenReviewCount struct {
	Canteen     string `json:"canteen"`
	ReviewCount int    `json:"review_count"`
}

// SentimentCount is one label/count pair. Raw keeps the label exactly as it
// appeared in the source so unknown labels can still be shown.
type SentimentCount struct {
	Label SentimentLabel `json:"label"`
	Raw   string         `json:"raw"`
	Count int            `json:"count"`
}

// SentimentCounts keeps the order of the source document.
type SentimentCounts []SentimentCount

func (s SentimentCounts) Total() int {
	total := 0
	for _, c := range s {
		total += c.Count
	}
	return total
}

type CanteenSentiment struct {
	Canteen string          `json:"canteen"`
	Counts  SentimentCounts `json:"counts"`
}

type DetailedComment struct {
	Canteen        string         `json:"canteen"`
	Text           string         `json:"text"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
	RawLabel       string         `json:"raw_label"`
	Hygiene        float64        `json:"hygiene"`
	Price          float64        `json:"price"`
	Service        float64        `json:"service"`
}

// Datasets is everything the loader produces. It is never mutated after load.
type Datasets struct {
	Averages         []CanteenAverages
	ReviewCounts     []CanteenReviewCount
	CanteenSentiment []CanteenSentiment
	GlobalSentiment  SentimentCounts
	Comments         []DetailedComment
}

type SelectionEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	View      View      `json:"view"`
	Canteen   string    `json:"canteen,omitempty"`
	Filter    Filter    `json:"filter"`
	Timestamp time.Time `json:"timestamp"`
}
