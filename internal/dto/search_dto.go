package dto

import "github.com/AbhiraajV/credate/internal/models"

// SearchInput is the partial identifier record a search runs against.
// Empty fields are wildcards, not "must be empty".
type SearchInput struct {
	Name        string `json:"name"`
	InstagramID string `json:"instagram_id"`
	FacebookID  string `json:"facebook_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (s *SearchInput) Identifier() models.Identifier {
	return models.Identifier{
		Name:        s.Name,
		InstagramID: s.InstagramID,
		FacebookID:  s.FacebookID,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
	}
}

// SearchResultDetail is one persisted match with its report payload.
// Report is nil when the underlying report has since been deleted; the
// result row itself is a historical snapshot and survives.
type SearchResultDetail struct {
	Result models.SearchResult `json:"result"`
	Report *models.Report      `json:"report,omitempty"`
}

// SearchDetail is a search with its assembled result set.
type SearchDetail struct {
	Search  models.Search        `json:"search"`
	Results []SearchResultDetail `json:"results"`
}
