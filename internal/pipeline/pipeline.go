package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/textscope/textscope/internal/analyzers"
	"github.com/textscope/textscope/internal/models"
)

var (
	// ErrNoText is returned when the request carries no text field.
	ErrNoText = errors.New("no text provided")
	// ErrEmptyText is returned when the text is blank after trimming.
	ErrEmptyText = errors.New("empty text provided")
)

// SentimentScorer scores polarity and labels it.
type SentimentScorer interface {
	Analyze(text string) (score float64, label string)
}

// EntityExtractor finds named entities.
type EntityExtractor interface {
	Analyze(text string) ([]models.Entity, error)
}

// EmotionCounter counts emotion lexicon matches and picks the dominant
// category.
type EmotionCounter interface {
	Analyze(text string) (counts map[string]int, dominant string, err error)
}

// TextSummarizer produces an extractive summary.
type TextSummarizer interface {
	Summarize(text string) (string, error)
}

// Pipeline runs every analyzer on one input and merges their outputs.
// Analyzers are read-only after construction; a Pipeline is safe for
// concurrent use.
type Pipeline struct {
	sentiment SentimentScorer
	entities  EntityExtractor
	emotions  EmotionCounter
	summary   TextSummarizer
}

func New(sentiment SentimentScorer, entities EntityExtractor, emotions EmotionCounter, summary TextSummarizer) *Pipeline {
	return &Pipeline{
		sentiment: sentiment,
		entities:  entities,
		emotions:  emotions,
		summary:   summary,
	}
}

// Analyze validates the input and runs the four analyzers independently.
// A failing analyzer leaves its slot at the zero value and appends a
// warning; the other analyzers still run and the request still succeeds.
func (p *Pipeline) Analyze(text string) (*models.AnalysisResponse, error) {
	if text == "" {
		return nil, ErrNoText
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	resp := &models.AnalysisResponse{
		Sentiment: models.SentimentResult{Label: analyzers.LabelUnknown},
		Entities:  []models.Entity{},
		Emotions:  map[string]int{},
	}

	if err := capture("sentiment", func() error {
		score, label := p.sentiment.Analyze(text)
		resp.Sentiment = models.SentimentResult{Label: label, Score: score}
		return nil
	}); err != nil {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("sentiment analysis failed: %v", err))
	}

	if err := capture("entities", func() error {
		entities, err := p.entities.Analyze(text)
		if err != nil {
			return err
		}
		resp.Entities = entities
		return nil
	}); err != nil {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("named entity recognition failed: %v", err))
	}

	if err := capture("emotions", func() error {
		counts, dominant, err := p.emotions.Analyze(text)
		if err != nil {
			return err
		}
		resp.Emotions = counts
		resp.DominantEmotion = dominant
		return nil
	}); err != nil {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("emotion analysis failed: %v", err))
	}

	if err := capture("summary", func() error {
		summary, err := p.summary.Summarize(text)
		if err != nil {
			return err
		}
		resp.Summary = summary
		return nil
	}); err != nil {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("text summarization failed: %v", err))
	}

	return resp, nil
}

// capture runs one analyzer and converts a library panic into an error, so
// a fault in one analyzer cannot take down the whole request.
func capture(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s analyzer panicked: %v", name, r)
			slog.Error("[Pipeline] Analyzer panicked",
				slog.String("analyzer", name),
				slog.Any("panic", r))
		}
	}()

	if err := fn(); err != nil {
		slog.Error("[Pipeline] Analyzer failed",
			slog.String("analyzer", name),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}
