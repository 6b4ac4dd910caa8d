package dto

import "github.com/AbhiraajV/credate/internal/models"

// ReportInput carries the writable fields of a report for create and
// update. Update overwrites all of them.
type ReportInput struct {
	Name        string `json:"name"`
	InstagramID string `json:"instagram_id"`
	FacebookID  string `json:"facebook_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
}

func (r *ReportInput) Identifier() models.Identifier {
	return models.Identifier{
		Name:        r.Name,
		InstagramID: r.InstagramID,
		FacebookID:  r.FacebookID,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}
