package document

import "time"

// Status is the backend-maintained lifecycle status of a document.
// Transitions are server-enforced and monotonic; the client only ever
// overwrites its cached status with a fresher server-reported one.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRejected   Status = "rejected"
	StatusExpired    Status = "expired"
)

// Terminal reports whether no further status transitions are expected.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// AwaitingSignature reports whether the document is in a state the
// signing provider can still advance. Drafts are excluded: they cannot
// change server-side until sent to signature, so polling them is wasted
// traffic.
func (s Status) AwaitingSignature() bool {
	return s == StatusPending || s == StatusInProgress
}

// SignerStatus is the per-signer signing state.
type SignerStatus string

const (
	SignerPending    SignerStatus = "pending"
	SignerInProgress SignerStatus = "in_progress"
	SignerSigned     SignerStatus = "signed"
	SignerRejected   SignerStatus = "rejected"
	SignerCancelled  SignerStatus = "cancelled"
)

// Signer is a person who must act on a document. Signers belong to
// their document and do not outlive it.
type Signer struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Status    SignerStatus `json:"status"`
	Token     string       `json:"token"`
	SignURL   string       `json:"sign_url"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Document is a signable artifact plus its signers and lifecycle status.
// ProviderStatus carries the raw provider-specific status string; Status
// is the backend's normalized view and the one the client reasons about.
type Document struct {
	ID              int64      `json:"id"`
	CompanyID       int64      `json:"company"`
	CompanyName     string     `json:"company_name"`
	Name            string     `json:"name"`
	OpenID          string     `json:"open_id"`
	Token           string     `json:"token"`
	ProviderStatus  string     `json:"provider_status"`
	Status          Status     `json:"internal_status"`
	FileURL         string     `json:"file_url"`
	DateLimitToSign *time.Time `json:"date_limit_to_sign"`
	CreatedBy       int64      `json:"created_by"`
	Signers         []Signer   `json:"signers"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SignerInput identifies a signer in create/update/add-signer requests.
type SignerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateRequest is the payload for creating a document. The backend
// fetches and validates the PDF at FileURL server-side.
type CreateRequest struct {
	Name            string        `json:"name"`
	FileURL         string        `json:"url_pdf"`
	Signers         []SignerInput `json:"signers"`
	DateLimitToSign *time.Time    `json:"date_limit_to_sign,omitempty"`
}

// UpdateRequest is the payload for a partial document update; nil fields
// are left unchanged by the backend.
type UpdateRequest struct {
	Name            *string       `json:"name,omitempty"`
	FileURL         *string       `json:"url_pdf,omitempty"`
	Signers         []SignerInput `json:"signers,omitempty"`
	DateLimitToSign *time.Time    `json:"date_limit_to_sign,omitempty"`
}
