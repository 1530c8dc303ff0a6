package document

import (
	"context"
	"time"
)

// Insights is the AI-derived analysis of a document's content.
type Insights struct {
	ID            int64     `json:"id"`
	DocumentID    int64     `json:"document"`
	MissingTopics []string  `json:"missing_topics"`
	Summary       string    `json:"summary"`
	Insights      []string  `json:"insights"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
	ModelUsed     string    `json:"model_used"`
}

// Insights fetches the analysis for a document. A document that has not
// been analyzed yet yields apiclient.ErrNotFound; callers should render
// that as "not yet analyzed" rather than as a failure.
func (s *Service) Insights(ctx context.Context, companyID, documentID int64) (*Insights, error) {
	var insights Insights
	if err := s.client.Get(ctx, documentPath(companyID, documentID)+"insights/", &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

// Analyze forces a fresh analysis of the document and returns it.
func (s *Service) Analyze(ctx context.Context, companyID, documentID int64) (*Insights, error) {
	var insights Insights
	if err := s.client.Post(ctx, documentPath(companyID, documentID)+"analyze/", nil, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}
