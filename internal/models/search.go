package models

import (
	"time"

	"github.com/google/uuid"
)

// Search records one search invocation. The identifier fields are the
// query; its matches are persisted as SearchResult rows so the result set
// stays stable even as the underlying reports change.
type Search struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Identifier Identifier `gorm:"embedded" json:"identifier"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Owner      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (Search) TableName() string {
	return "searches"
}
