package document

import "context"

// Metrics is the aggregate view the dashboard renders.
type Metrics struct {
	TotalDocuments            int            `json:"total_documents"`
	SignedDocuments           int            `json:"signed_documents"`
	PendingDocuments          int            `json:"pending_documents"`
	CancelledDocuments        int            `json:"cancelled_documents"`
	SignatureRate             float64        `json:"signature_rate"`
	AverageSignatureTimeHours float64        `json:"average_signature_time_hours"`
	StatusBreakdown           map[string]int `json:"status_breakdown"`
	DocumentsByMonth          map[string]int `json:"documents_by_month"`
}

// AlertSeverity classifies a dashboard alert.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityError   AlertSeverity = "error"
)

// Alert is a backend-computed attention item, e.g. a document close to
// its signing deadline.
type Alert struct {
	ID           int64         `json:"id,omitempty"`
	Type         string        `json:"type"`
	Message      string        `json:"message"`
	DocumentID   int64         `json:"document_id"`
	DocumentName string        `json:"document_name"`
	Severity     AlertSeverity `json:"severity"`
}

// AlertsResponse is the alerts endpoint envelope.
type AlertsResponse struct {
	Alerts []Alert `json:"alerts"`
	Count  int     `json:"count"`
}

// Metrics fetches the aggregate document metrics for a company.
func (s *Service) Metrics(ctx context.Context, companyID int64) (*Metrics, error) {
	var metrics Metrics
	if err := s.client.Get(ctx, documentsPath(companyID)+"metrics/", &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// Alerts fetches the current alerts for a company.
func (s *Service) Alerts(ctx context.Context, companyID int64) (*AlertsResponse, error) {
	var alerts AlertsResponse
	if err := s.client.Get(ctx, documentsPath(companyID)+"alerts/", &alerts); err != nil {
		return nil, err
	}
	return &alerts, nil
}
