// Package dataset loads the five pre-aggregated feedback documents and turns
// them into domain collections. Any missing required field fails the load.
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"cantina-feedback/dashboard-svc/internal/domain"
)

type Loader struct {
	source Source
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

func (l *Loader) Load(ctx context.Context) (*domain.Datasets, error) {
	var ds domain.Datasets
	var err error

	if ds.Averages, err = load(ctx, l.source, DocAverages, parseAverages); err != nil {
		return nil, err
	}
	if ds.ReviewCounts, err = load(ctx, l.source, DocReviewCounts, parseReviewCounts); err != nil {
		return nil, err
	}
	if ds.CanteenSentiment, err = load(ctx, l.source, DocCanteenSentiment, parseCanteenSentiment); err != nil {
		return nil, err
	}
	if ds.GlobalSentiment, err = load(ctx, l.source, DocGlobalSentiment, parseGlobalSentiment); err != nil {
		return nil, err
	}
	if ds.Comments, err = load(ctx, l.source, DocComments, parseComments); err != nil {
		return nil, err
	}
	return &ds, nil
}

func load[T any](ctx context.Context, src Source, name string, parse func([]byte) (T, error)) (T, error) {
	var zero T
	raw, err := src.Read(ctx, name)
	if err != nil {
		return zero, err
	}
	out, err := parse(raw)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

type averagesRow struct {
	Canteen *string  `json:"cantina"`
	Overall *float64 `json:"nota_geral"`
	Hygiene *float64 `json:"higiene"`
	Price   *float64 `json:"precos"`
	Service *float64 `json:"atendimento"`
}

func parseAverages(raw []byte) ([]domain.CanteenAverages, error) {
	var rows []averagesRow
	if err := decode(raw, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.CanteenAverages, 0, len(rows))
	for i, r := range rows {
		if err := require(i, field{"cantina", r.Canteen != nil}, field{"nota_geral", r.Overall != nil},
			field{"higiene", r.Hygiene != nil}, field{"precos", r.Price != nil}, field{"atendimento", r.Service != nil}); err != nil {
			return nil, err
		}
		out = append(out, domain.CanteenAverages{
			Canteen: *r.Canteen,
			Overall: *r.Overall,
			Hygiene: *r.Hygiene,
			Price:   *r.Price,
			Service: *r.Service,
		})
	}
	return out, nil
}

type reviewCountRow struct {
	Canteen     *string `json:"cantina"`
	ReviewCount *int    `json:"num_avaliacoes"`
}

func parseReviewCounts(raw []byte) ([]domain.CanteenReviewCount, error) {
	var rows []reviewCountRow
	if err := decode(raw, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.CanteenReviewCount, 0, len(rows))
	for i, r := range rows {
		if err := require(i, field{"cantina", r.Canteen != nil}, field{"num_avaliacoes", r.ReviewCount != nil}); err != nil {
			return nil, err
		}
		out = append(out, domain.CanteenReviewCount{Canteen: *r.Canteen, ReviewCount: *r.ReviewCount})
	}
	return out, nil
}

// The per-canteen document is an object keyed by canteen, so it is walked
// token by token to keep the source order of canteens and labels.
func parseCanteenSentiment(raw []byte) ([]domain.CanteenSentiment, error) {
	entries, err := orderedObject(raw)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CanteenSentiment, 0, len(entries))
	for _, e := range entries {
		labels, err := orderedObject(e.value)
		if err != nil {
			return nil, fmt.Errorf("canteen %q: %w", e.key, err)
		}
		counts := make(domain.SentimentCounts, 0, len(labels))
		for _, l := range labels {
			var n *int
			if err := json.Unmarshal(l.value, &n); err != nil {
				return nil, fmt.Errorf("%w: canteen %q label %q: %v", domain.ErrMalformedDataset, e.key, l.key, err)
			}
			if n == nil {
				return nil, fmt.Errorf("%w: canteen %q: missing count for %q", domain.ErrMalformedDataset, e.key, l.key)
			}
			counts = append(counts, domain.SentimentCount{
				Label: domain.ParseSentimentLabel(l.key),
				Raw:   l.key,
				Count: *n,
			})
		}
		out = append(out, domain.CanteenSentiment{Canteen: e.key, Counts: counts})
	}
	return out, nil
}

type globalSentimentRow struct {
	Label *string `json:"sentimento_label"`
	Count *int    `json:"count"`
}

func parseGlobalSentiment(raw []byte) (domain.SentimentCounts, error) {
	var rows []globalSentimentRow
	if err := decode(raw, &rows); err != nil {
		return nil, err
	}
	out := make(domain.SentimentCounts, 0, len(rows))
	for i, r := range rows {
		if err := require(i, field{"sentimento_label", r.Label != nil}, field{"count", r.Count != nil}); err != nil {
			return nil, err
		}
		out = append(out, domain.SentimentCount{
			Label: domain.ParseSentimentLabel(*r.Label),
			Raw:   *r.Label,
			Count: *r.Count,
		})
	}
	return out, nil
}

type commentGroupRow struct {
	Canteen  *string       `json:"cantina"`
	Comments *[]commentRow `json:"detalhes_comentarios"`
}

// Per-comment ratings may be null in the survey export; they read as 0.
type commentRow struct {
	Text    *string  `json:"comentarios"`
	Label   *string  `json:"sentimento_label"`
	Hygiene *float64 `json:"higiene"`
	Price   *float64 `json:"precos"`
	Service *float64 `json:"atendimento"`
}

func parseComments(raw []byte) ([]domain.DetailedComment, error) {
	var groups []commentGroupRow
	if err := decode(raw, &groups); err != nil {
		return nil, err
	}
	var out []domain.DetailedComment
	for i, g := range groups {
		if err := require(i, field{"cantina", g.Canteen != nil}, field{"detalhes_comentarios", g.Comments != nil}); err != nil {
			return nil, err
		}
		for j, c := range *g.Comments {
			if err := require(j, field{"comentarios", c.Text != nil}, field{"sentimento_label", c.Label != nil}); err != nil {
				return nil, fmt.Errorf("canteen %q: %w", *g.Canteen, err)
			}
			out = append(out, domain.DetailedComment{
				Canteen:        *g.Canteen,
				Text:           *c.Text,
				SentimentLabel: domain.ParseSentimentLabel(*c.Label),
				RawLabel:       *c.Label,
				Hygiene:        orZero(c.Hygiene),
				Price:          orZero(c.Price),
				Service:        orZero(c.Service),
			})
		}
	}
	if out == nil {
		out = []domain.DetailedComment{}
	}
	return out, nil
}

func decode(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedDataset, err)
	}
	return nil
}

type field struct {
	name    string
	present bool
}

func require(row int, fields ...field) error {
	for _, f := range fields {
		if !f.present {
			return fmt.Errorf("%w: row %d: missing %q", domain.ErrMalformedDataset, row, f.name)
		}
	}
	return nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

type entry struct {
	key   string
	value json.RawMessage
}

func orderedObject(raw []byte) ([]entry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDataset, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", domain.ErrMalformedDataset)
	}

	var entries []entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDataset, err)
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", domain.ErrMalformedDataset, key, err)
		}
		entries = append(entries, entry{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDataset, err)
	}
	return entries, nil
}
