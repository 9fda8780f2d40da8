package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
)

type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Scorer assigns a polarity label and a signed score to review text.
// Implementations are total: empty text yields (LabelNeutral, 0).
type Scorer interface {
	Score(text string) (Label, float64)
}

var wordRegex = regexp.MustCompile(`\w+`)

var positiveWords = []string{
	"love", "great", "excellent", "amazing", "perfect",
	"beautiful", "wonderful", "enjoyed", "best",
}
var negativeWords = []string{
	"hate", "bad", "terrible", "awful", "disappointing",
	"boring", "worst", "confusing",
}

// LexiconScorer counts matches against fixed positive and negative
// word sets. The score is positive count minus negative count.
type LexiconScorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

func NewLexiconScorer() *LexiconScorer {
	s := &LexiconScorer{
		positive: make(map[string]struct{}, len(positiveWords)),
		negative: make(map[string]struct{}, len(negativeWords)),
	}
	for _, w := range positiveWords {
		s.positive[w] = struct{}{}
	}
	for _, w := range negativeWords {
		s.negative[w] = struct{}{}
	}
	return s
}

func (s *LexiconScorer) Score(text string) (Label, float64) {
	if text == "" {
		return LabelNeutral, 0
	}

	score := 0
	for _, word := range wordRegex.FindAllString(strings.ToLower(text), -1) {
		if _, ok := s.positive[word]; ok {
			score++
		}
		if _, ok := s.negative[word]; ok {
			score--
		}
	}

	switch {
	case score > 0:
		return LabelPositive, float64(score)
	case score < 0:
		return LabelNegative, float64(score)
	default:
		return LabelNeutral, 0
	}
}

// VaderScorer wraps the VADER model, producing a compound polarity in
// [-1, 1]. Labels use the canonical 0.05/-0.05 cutoffs.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (s *VaderScorer) Score(text string) (Label, float64) {
	if text == "" {
		return LabelNeutral, 0
	}

	compound := s.analyzer.PolarityScores(text).Compound
	switch {
	case compound >= 0.05:
		return LabelPositive, compound
	case compound <= -0.05:
		return LabelNegative, compound
	default:
		return LabelNeutral, compound
	}
}

// FromName resolves a strategy name from configuration, defaulting to
// the VADER model.
func FromName(name string) Scorer {
	if strings.EqualFold(name, "lexicon") {
		return NewLexiconScorer()
	}
	return NewVaderScorer()
}
