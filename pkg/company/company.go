package company

import "time"

// Company is the organization context under which all documents are
// scoped. The provider fields describe the e-signature provider the
// backend uses for this company and are opaque to the client.
type Company struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	ProviderID     int64          `json:"provider"`
	ProviderName   string         `json:"provider_name"`
	ProviderCode   string         `json:"provider_code"`
	APIToken       string         `json:"api_token"`
	ProviderConfig map[string]any `json:"provider_config"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
