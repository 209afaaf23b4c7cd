package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/textscope/textscope/internal/analyzers"
	"github.com/textscope/textscope/internal/models"
)

type fakeSentiment struct {
	score  float64
	label  string
	calls  int
	panics bool
}

func (f *fakeSentiment) Analyze(string) (float64, string) {
	f.calls++
	if f.panics {
		panic("lexicon index out of range")
	}
	return f.score, f.label
}

type fakeEntities struct {
	entities []models.Entity
	err      error
	calls    int
}

func (f *fakeEntities) Analyze(string) ([]models.Entity, error) {
	f.calls++
	return f.entities, f.err
}

type fakeEmotions struct {
	counts   map[string]int
	dominant string
	err      error
	calls    int
	panics   bool
}

func (f *fakeEmotions) Analyze(string) (map[string]int, string, error) {
	f.calls++
	if f.panics {
		panic("bad rune")
	}
	return f.counts, f.dominant, f.err
}

type fakeSummary struct {
	summary string
	err     error
	calls   int
}

func (f *fakeSummary) Summarize(string) (string, error) {
	f.calls++
	return f.summary, f.err
}

func newFakes() (*fakeSentiment, *fakeEntities, *fakeEmotions, *fakeSummary) {
	return &fakeSentiment{score: 0.5, label: analyzers.LabelPositive},
		&fakeEntities{entities: []models.Entity{{Text: "London", Label: "GPE"}}},
		&fakeEmotions{counts: map[string]int{"joy": 2}, dominant: "joy"},
		&fakeSummary{summary: "a short summary"}
}

func TestAnalyzeRejectsMissingText(t *testing.T) {
	sent, ents, emos, summ := newFakes()
	p := New(sent, ents, emos, summ)

	if _, err := p.Analyze(""); !errors.Is(err, ErrNoText) {
		t.Errorf("expected ErrNoText, got %v", err)
	}
	if _, err := p.Analyze("  \n\t "); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}

	if sent.calls+ents.calls+emos.calls+summ.calls != 0 {
		t.Error("analyzers must not run on rejected input")
	}
}

func TestAnalyzeMergesAllSlots(t *testing.T) {
	sent, ents, emos, summ := newFakes()
	p := New(sent, ents, emos, summ)

	resp, err := p.Analyze("some text")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	want := &models.AnalysisResponse{
		Sentiment:       models.SentimentResult{Label: analyzers.LabelPositive, Score: 0.5},
		Entities:        []models.Entity{{Text: "London", Label: "GPE"}},
		Emotions:        map[string]int{"joy": 2},
		DominantEmotion: "joy",
		Summary:         "a short summary",
	}
	if !reflect.DeepEqual(resp, want) {
		t.Errorf("Analyze() = %+v, want %+v", resp, want)
	}
}

func TestAnalyzeIsolatesAnalyzerFailure(t *testing.T) {
	sent, ents, emos, summ := newFakes()
	ents.entities = nil
	ents.err = errors.New("encoding blew up")
	p := New(sent, ents, emos, summ)

	resp, err := p.Analyze("some text")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if len(resp.Warnings) != 1 || !strings.Contains(resp.Warnings[0], "named entity recognition failed") {
		t.Errorf("unexpected warnings: %v", resp.Warnings)
	}
	if len(resp.Entities) != 0 {
		t.Errorf("failed slot not empty: %v", resp.Entities)
	}
	// The other analyzers still ran and populated their slots.
	if resp.Sentiment.Label != analyzers.LabelPositive || resp.Summary != "a short summary" || resp.DominantEmotion != "joy" {
		t.Errorf("sibling slots lost on isolated failure: %+v", resp)
	}
}

func TestAnalyzeRecoversAnalyzerPanic(t *testing.T) {
	sent, ents, emos, summ := newFakes()
	emos.panics = true
	p := New(sent, ents, emos, summ)

	resp, err := p.Analyze("some text")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if len(resp.Warnings) != 1 || !strings.Contains(resp.Warnings[0], "emotion analysis failed") {
		t.Errorf("unexpected warnings: %v", resp.Warnings)
	}
	if resp.DominantEmotion != "" || len(resp.Emotions) != 0 {
		t.Errorf("panicked slot not left at zero value: %+v", resp)
	}
	if summ.calls != 1 {
		t.Error("summarizer skipped after sibling panic")
	}
}

func TestAnalyzeWithRealAnalyzersIsDeterministic(t *testing.T) {
	entities, err := analyzers.NewEntityAnalyzer()
	if err != nil {
		t.Fatalf("NewEntityAnalyzer() error: %v", err)
	}
	p := New(
		analyzers.NewSentimentAnalyzer(),
		entities,
		analyzers.NewEmotionAnalyzer(),
		analyzers.NewSummarizer(),
	)

	text := "Paris is a wonderful city. I love walking along the river every happy morning."
	first, err := p.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	second, err := p.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated identical requests differ:\n%+v\n%+v", first, second)
	}
}
