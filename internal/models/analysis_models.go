package models

// AnalysisRequest is the body of POST /analyze.
type AnalysisRequest struct {
	Text string `json:"text"`
}

// SentimentResult is the polarity score together with its threshold label.
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Entity is one named entity found in the input text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// AnalysisResponse merges every analyzer's output for a single request.
// Slots keep their zero value when their analyzer failed; the failure is
// reported in Warnings instead of aborting the request.
type AnalysisResponse struct {
	Sentiment       SentimentResult `json:"sentiment"`
	Entities        []Entity        `json:"entities"`
	Emotions        map[string]int  `json:"emotions"`
	DominantEmotion string          `json:"dominant_emotion,omitempty"`
	Summary         string          `json:"summary"`
	Warnings        []string        `json:"warnings,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
