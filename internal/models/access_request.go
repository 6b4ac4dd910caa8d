package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of an access request.
// PENDING transitions exactly once to APPROVED or DENIED; terminal states
// are immutable.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusDenied   RequestStatus = "DENIED"
)

// AccessRequest asks a report's owner for permission to read the report.
// ReportOwnerID is snapshotted from the report at creation time so a later
// ownership change cannot retroactively move approval rights.
type AccessRequest struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ReportID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_access_requests_report_requester" json:"report_id"`
	ReportOwnerID uuid.UUID     `gorm:"type:uuid;not null;index" json:"report_owner_id"`
	RequesterID   uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_access_requests_report_requester" json:"requester_id"`
	Message       string        `gorm:"not null;size:1000" json:"message"`
	Status        RequestStatus `gorm:"not null;default:'PENDING';size:16" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Requester     User          `gorm:"foreignKey:RequesterID" json:"-"`
}

func (AccessRequest) TableName() string {
	return "access_requests"
}
