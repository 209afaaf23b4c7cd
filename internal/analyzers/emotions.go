package analyzers

import (
	"strings"

	prose "github.com/tsawler/prose/v3"
)

// EmotionAnalyzer counts lexicon matches per emotion category. The lexicon
// is read-only and safe for concurrent use.
type EmotionAnalyzer struct {
	lexicon map[string][]string
}

func NewEmotionAnalyzer() *EmotionAnalyzer {
	return &EmotionAnalyzer{lexicon: emotionLexicon}
}

// Analyze returns raw match counts per category plus the dominant
// category. Categories with no matches are omitted from the map, so an
// input with no lexicon words yields an empty map and no dominant emotion.
func (e *EmotionAnalyzer) Analyze(text string) (map[string]int, string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, "", err
	}

	counts := make(map[string]int)
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		for _, category := range e.lexicon[word] {
			counts[category]++
		}
	}

	return counts, DominantEmotion(counts), nil
}

// DominantEmotion picks the category with the highest count. Ties resolve
// to the earliest category in EmotionCategories; an all-zero map yields
// the empty string.
func DominantEmotion(counts map[string]int) string {
	dominant := ""
	best := 0
	for _, category := range EmotionCategories {
		if c := counts[category]; c > best {
			best = c
			dominant = category
		}
	}
	return dominant
}
