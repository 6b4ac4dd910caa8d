package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchResult is one matching report for one search. MatchedOn is the wire
// name of the identifier field that produced the match, resolved in the
// fixed priority order of IdentifierFields. Rows are a historical snapshot:
// deleting the referenced report does not delete them.
type SearchResult struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SearchID  uuid.UUID `gorm:"type:uuid;not null;index" json:"search_id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	MatchedOn string    `gorm:"not null;size:32" json:"matched_on"`
	CreatedAt time.Time `json:"created_at"`
}

func (SearchResult) TableName() string {
	return "search_results"
}
