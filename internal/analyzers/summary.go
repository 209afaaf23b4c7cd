package analyzers

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	prose "github.com/tsawler/prose/v3"
)

// summaryRatio is the share of sentences kept in the summary; at least one
// sentence is always kept.
const summaryRatio = 0.3

// Summarizer produces a frequency-based extractive summary: sentences are
// scored by the normalized frequencies of their content words and the
// highest-scoring ones are kept.
type Summarizer struct{}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize returns the top-scoring sentences of text, ordered by
// descending score, ties broken by earlier position in the text.
func (s *Summarizer) Summarize(text string) (string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return "", err
	}

	sentences := doc.Sentences()
	if len(sentences) == 0 {
		return "", nil
	}

	tokens := doc.Tokens()
	frequencies := wordFrequencies(tokens)

	type scoredSentence struct {
		index int
		score float64
		text  string
	}

	scored := make([]scoredSentence, 0, len(sentences))
	for i, sent := range sentences {
		var score float64
		for _, tok := range tokens {
			if tok.Start < sent.Start || tok.End > sent.End {
				continue
			}
			score += frequencies[strings.ToLower(tok.Text)]
		}
		scored = append(scored, scoredSentence{index: i, score: score, text: sent.Text})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	keep := int(float64(len(sentences)) * summaryRatio)
	if keep < 1 {
		keep = 1
	}

	parts := make([]string, 0, keep)
	for _, sent := range scored[:keep] {
		parts = append(parts, sent.text)
	}
	return strings.Join(parts, " "), nil
}

// wordFrequencies counts content words (stopwords and punctuation
// excluded) and normalizes the counts by the maximum frequency.
func wordFrequencies(tokens []prose.Token) map[string]float64 {
	frequencies := make(map[string]float64)
	for _, tok := range tokens {
		word := strings.ToLower(tok.Text)
		if !isContentWord(word) {
			continue
		}
		frequencies[word]++
	}

	var max float64
	for _, f := range frequencies {
		if f > max {
			max = f
		}
	}
	if max > 0 {
		for word := range frequencies {
			frequencies[word] /= max
		}
	}
	return frequencies
}

// isContentWord reports whether a lowercased token survives stopword
// cleaning. CleanString drops both stopwords and punctuation, so a token
// that comes back empty carries no content.
func isContentWord(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) != ""
}
