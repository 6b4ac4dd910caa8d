package services

import (
	"errors"
	"fmt"

	"github.com/AbhiraajV/credate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	minMessageLen = 10
	maxMessageLen = 1000
)

// AccessService runs the request/approve/deny state machine that governs
// third-party reads of a report. Its approval predicate must stay aligned
// with ReportService.GetByID.
type AccessService struct {
	db     *gorm.DB
	filter *ContentFilter
}

func NewAccessService(db *gorm.DB, filter *ContentFilter) *AccessService {
	return &AccessService{db: db, filter: filter}
}

// Request creates a PENDING access request for a report the requester does
// not own. ReportOwnerID is snapshotted from the report here; a later
// ownership change cannot move approval rights for an in-flight request.
func (s *AccessService) Request(requesterID, reportID uuid.UUID, message string) (*models.AccessRequest, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if report.UserID == requesterID {
		return nil, ErrSelfRequest
	}

	var existing models.AccessRequest
	if err := s.db.Where("report_id = ? AND requester_id = ?", reportID, requesterID).First(&existing).Error; err == nil {
		return nil, &DuplicateRequestError{Status: existing.Status}
	}

	if len(message) < minMessageLen || len(message) > maxMessageLen {
		return nil, validationf("message must be %d-%d characters", minMessageLen, maxMessageLen)
	}
	if s.filter.ContainsProfanity(message) {
		return nil, validationf("message contains inappropriate language")
	}

	request := &models.AccessRequest{
		ID:            uuid.New(),
		ReportID:      reportID,
		ReportOwnerID: report.UserID,
		RequesterID:   requesterID,
		Message:       message,
		Status:        models.StatusPending,
	}

	if err := s.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create access request: %w", err)
	}
	return request, nil
}

func (s *AccessService) Approve(ownerID, requestID uuid.UUID) (*models.AccessRequest, error) {
	return s.resolve(ownerID, requestID, models.StatusApproved)
}

func (s *AccessService) Deny(ownerID, requestID uuid.UUID) (*models.AccessRequest, error) {
	return s.resolve(ownerID, requestID, models.StatusDenied)
}

// resolve performs the single PENDING -> APPROVED|DENIED transition. The
// update is guarded on the current status so two concurrent resolutions
// cannot both win.
func (s *AccessService) resolve(ownerID, requestID uuid.UUID, status models.RequestStatus) (*models.AccessRequest, error) {
	var request models.AccessRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if request.ReportOwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	if request.Status != models.StatusPending {
		return nil, &InvalidTransitionError{Status: request.Status}
	}

	result := s.db.Model(&models.AccessRequest{}).
		Where("id = ? AND status = ?", requestID, models.StatusPending).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update access request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// lost the race: someone else resolved it first
		if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
			return nil, ErrNotFound
		}
		return nil, &InvalidTransitionError{Status: request.Status}
	}

	request.Status = status
	return &request, nil
}

// ListReceived returns the requests awaiting or resolved by the caller as
// report owner, newest first.
func (s *AccessService) ListReceived(ownerID uuid.UUID) ([]models.AccessRequest, error) {
	var requests []models.AccessRequest
	err := s.db.Where("report_owner_id = ?", ownerID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// ListSent returns the requests the caller has made against other users'
// reports, newest first.
func (s *AccessService) ListSent(requesterID uuid.UUID) ([]models.AccessRequest, error) {
	var requests []models.AccessRequest
	err := s.db.Where("requester_id = ?", requesterID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}
