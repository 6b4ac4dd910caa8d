package services

import (
	"errors"
	"fmt"

	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxDescriptionLen = 1000

// ReportService owns the report lifecycle: create, owner-only update and
// delete, and reads gated by ownership or an approved access request.
type ReportService struct {
	db     *gorm.DB
	filter *ContentFilter
}

func NewReportService(db *gorm.DB, filter *ContentFilter) *ReportService {
	return &ReportService{db: db, filter: filter}
}

func (s *ReportService) validateInput(in *dto.ReportInput) error {
	if in.Identifier().Empty() {
		return validationf("at least one identifier field is required")
	}
	if in.Rating < 0 || in.Rating > 10 {
		return validationf("rating must be between 0 and 10")
	}
	if len(in.Description) > maxDescriptionLen {
		return validationf("description must be under %d characters", maxDescriptionLen)
	}
	if s.filter.ContainsProfanity(in.Description) {
		return validationf("description contains inappropriate language")
	}
	return nil
}

func (s *ReportService) Create(userID uuid.UUID, in *dto.ReportInput) (*models.Report, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	report := &models.Report{
		ID:          uuid.New(),
		UserID:      userID,
		Identifier:  in.Identifier(),
		Rating:      in.Rating,
		Description: in.Description,
	}

	if err := s.db.Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

func (s *ReportService) Update(userID, reportID uuid.UUID, in *dto.ReportInput) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if report.UserID != userID {
		return nil, ErrUnauthorized
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	report.Identifier = in.Identifier()
	report.Rating = in.Rating
	report.Description = in.Description

	if err := s.db.Save(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return &report, nil
}

// GetByID returns the report when the caller owns it or holds an APPROVED
// access request for it. Absent and forbidden both surface ErrNotFound so
// a probing caller cannot learn whether the report exists.
func (s *ReportService) GetByID(userID, reportID uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if report.UserID == userID {
		return &report, nil
	}

	var request models.AccessRequest
	err := s.db.
		Where("report_id = ? AND requester_id = ? AND status = ?", reportID, userID, models.StatusApproved).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// Delete removes an owned report together with its access requests.
// SearchResult rows referencing it are kept: persisted results are a
// historical snapshot.
func (s *ReportService) Delete(userID, reportID uuid.UUID) error {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if report.UserID != userID {
		return ErrUnauthorized
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", reportID).Delete(&models.AccessRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&report).Error
	})
}

func (s *ReportService) ListMine(userID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}
