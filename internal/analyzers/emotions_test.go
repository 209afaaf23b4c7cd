package analyzers

import "testing"

func TestEmotionAnalyzerCounts(t *testing.T) {
	a := NewEmotionAnalyzer()

	counts, dominant, err := a.Analyze("I love my loyal friend")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if counts["trust"] != 2 {
		t.Errorf("trust count = %d, want 2 (loyal, friend)", counts["trust"])
	}
	if counts["joy"] != 1 {
		t.Errorf("joy count = %d, want 1 (love)", counts["joy"])
	}
	if dominant != "trust" {
		t.Errorf("dominant = %q, want %q", dominant, "trust")
	}
}

func TestEmotionAnalyzerCaseInsensitive(t *testing.T) {
	a := NewEmotionAnalyzer()

	counts, _, err := a.Analyze("HAPPY Happy happy")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if counts["joy"] != 3 {
		t.Errorf("joy count = %d, want 3", counts["joy"])
	}
}

func TestEmotionAnalyzerNoMatches(t *testing.T) {
	a := NewEmotionAnalyzer()

	counts, dominant, err := a.Analyze("the chair stood beside the window")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected no matches, got %v", counts)
	}
	if dominant != "" {
		t.Errorf("dominant = %q, want empty", dominant)
	}
}

func TestDominantEmotionTieBreak(t *testing.T) {
	// anger precedes joy in the fixed category order.
	counts := map[string]int{"joy": 2, "anger": 2, "trust": 1}
	if got := DominantEmotion(counts); got != "anger" {
		t.Errorf("DominantEmotion() = %q, want %q", got, "anger")
	}
}

func TestDominantEmotionEmpty(t *testing.T) {
	if got := DominantEmotion(map[string]int{}); got != "" {
		t.Errorf("DominantEmotion(empty) = %q, want empty", got)
	}
}

func TestLexiconCategoriesAreKnown(t *testing.T) {
	known := make(map[string]bool, len(EmotionCategories))
	for _, c := range EmotionCategories {
		known[c] = true
	}
	for word, categories := range emotionLexicon {
		for _, c := range categories {
			if !known[c] {
				t.Errorf("word %q maps to unknown category %q", word, c)
			}
		}
	}
}
