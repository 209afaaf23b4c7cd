package analyzers

import (
	"errors"
	"fmt"

	prose "github.com/tsawler/prose/v3"

	"github.com/textscope/textscope/internal/models"
)

// ErrParserUnavailable is returned when the prose model failed to warm up
// at startup. The service keeps running degraded; /health reports it.
var ErrParserUnavailable = errors.New("entity parser unavailable")

// EntityAnalyzer extracts named entities with the prose English model.
type EntityAnalyzer struct {
	ready bool
}

// NewEntityAnalyzer warms the model up on a short probe so a broken model
// surfaces at startup instead of on the first request. The returned
// analyzer is always usable; on error it reports ErrParserUnavailable per
// request.
func NewEntityAnalyzer() (*EntityAnalyzer, error) {
	if _, err := prose.NewDocument("probe", prose.WithSegmentation(false)); err != nil {
		return &EntityAnalyzer{}, fmt.Errorf("warming up entity parser: %w", err)
	}
	return &EntityAnalyzer{ready: true}, nil
}

// Analyze returns the named entities of text in document order.
func (e *EntityAnalyzer) Analyze(text string) ([]models.Entity, error) {
	if !e.ready {
		return nil, ErrParserUnavailable
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	found := doc.Entities()
	entities := make([]models.Entity, 0, len(found))
	for _, ent := range found {
		entities = append(entities, models.Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}
