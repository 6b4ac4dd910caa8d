package dto

import "github.com/google/uuid"

type RequestAccessRequest struct {
	ReportID uuid.UUID `json:"report_id"`
	Message  string    `json:"message"`
}
