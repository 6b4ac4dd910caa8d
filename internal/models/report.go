package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a user-submitted record about a person. Mutable only by its
// owner; readable by the owner or by a requester holding an APPROVED
// access request.
type Report struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Identifier  Identifier `gorm:"embedded" json:"identifier"`
	Rating      int        `gorm:"not null" json:"rating"`
	Description string     `gorm:"size:1000" json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Owner       User       `gorm:"foreignKey:UserID" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}
