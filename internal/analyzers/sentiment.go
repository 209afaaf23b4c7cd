package analyzers

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// Label thresholds on the VADER compound score. Scores inside the open
// interval (-0.1, 0.1) are neutral.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
	// LabelUnknown marks a sentiment slot whose analyzer failed.
	LabelUnknown = "Unknown"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// SentimentAnalyzer scores text polarity with VADER. The underlying
// analyzer is read-only after construction and safe for concurrent use.
type SentimentAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and collapses whitespace so the
// scorer sees prose, not markup.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// Analyze returns the compound polarity score in [-1, 1] and its label.
func (s *SentimentAnalyzer) Analyze(text string) (float64, string) {
	plainText := ConvertMarkdownToText(text)

	sentiment := s.analyzer.PolarityScores(plainText)
	score := sentiment.Compound

	return score, LabelForScore(score)
}

// LabelForScore maps a polarity score to its categorical label.
func LabelForScore(score float64) string {
	switch {
	case score > PositiveThreshold:
		return LabelPositive
	case score < NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
