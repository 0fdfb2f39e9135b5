package domain

import "strings"

type SentimentLabel string

const (
	SentimentPositive  SentimentLabel = "Positive"
	SentimentNegative  SentimentLabel = "Negative"
	SentimentNeutral   SentimentLabel = "Neutral"
	SentimentNoComment SentimentLabel = "NoComment"
	SentimentUnknown   SentimentLabel = "Unknown"
)

// OtherCategory is the display category for labels outside the known set.
const OtherCategory = "Other"

var sentimentAliases = map[string]SentimentLabel{
	"positivo":       SentimentPositive,
	"positive":       SentimentPositive,
	"negativo":       SentimentNegative,
	"negative":       SentimentNegative,
	"neutro":         SentimentNeutral,
	"neutral":        SentimentNeutral,
	"sem comentário": SentimentNoComment,
	"sem comentario": SentimentNoComment,
	"nocomment":      SentimentNoComment,
	"no comment":     SentimentNoComment,
}

// ParseSentimentLabel accepts the survey's Portuguese labels and the English
// names. Anything else is SentimentUnknown.
func ParseSentimentLabel(raw string) SentimentLabel {
	if label, ok := sentimentAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return label
	}
	return SentimentUnknown
}

func (l SentimentLabel) Known() bool {
	switch l {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentNoComment:
		return true
	}
	return false
}

func (l SentimentLabel) Category() string {
	if l.Known() {
		return string(l)
	}
	return OtherCategory
}
