package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchService persists searches and their matched reports. A report
// matches when ANY provided identifier field is exactly equal
// (case-sensitive) to the report's corresponding field; omitted fields are
// wildcards. Results are written in the same transaction as the search row,
// so a partial result set is never observable.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// matchClause builds the disjunctive WHERE clause over the non-empty
// fields of the query, in the fixed priority order.
func matchClause(query models.Identifier) (string, []interface{}) {
	var conds []string
	var args []interface{}
	for _, f := range models.IdentifierFields {
		if v := f.Value(query); v != "" {
			conds = append(conds, f.Column+" = ?")
			args = append(args, v)
		}
	}
	return strings.Join(conds, " OR "), args
}

func (s *SearchService) Create(userID uuid.UUID, in *dto.SearchInput) (*dto.SearchDetail, error) {
	query := in.Identifier()
	if query.Empty() {
		return nil, validationf("at least one identifier field is required")
	}

	search := models.Search{
		ID:         uuid.New(),
		UserID:     userID,
		Identifier: query,
	}

	var matched []models.Report
	var results []models.SearchResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&search).Error; err != nil {
			return err
		}

		var candidates []models.Report
		cond, args := matchClause(query)
		if err := tx.Where(cond, args...).Order("created_at ASC").Find(&candidates).Error; err != nil {
			return err
		}

		matched = make([]models.Report, 0, len(candidates))
		results = make([]models.SearchResult, 0, len(candidates))
		for _, report := range candidates {
			matchedOn, ok := query.MatchedField(report.Identifier)
			if !ok {
				continue
			}
			matched = append(matched, report)
			results = append(results, models.SearchResult{
				ID:        uuid.New(),
				SearchID:  search.ID,
				ReportID:  report.ID,
				MatchedOn: matchedOn,
			})
		}
		if len(results) == 0 {
			return nil
		}
		return tx.CreateInBatches(results, 50).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create search: %w", err)
	}

	detail := &dto.SearchDetail{
		Search:  search,
		Results: make([]dto.SearchResultDetail, len(results)),
	}
	for i, result := range results {
		detail.Results[i] = dto.SearchResultDetail{Result: result, Report: &matched[i]}
	}
	return detail, nil
}

// GetByID returns an owned search with its assembled result set. A result
// whose report has since been deleted keeps its row with a nil report.
func (s *SearchService) GetByID(userID, searchID uuid.UUID) (*dto.SearchDetail, error) {
	var search models.Search
	if err := s.db.First(&search, "id = ?", searchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if search.UserID != userID {
		return nil, ErrUnauthorized
	}

	var results []models.SearchResult
	if err := s.db.Where("search_id = ?", searchID).Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, err
	}

	reportIDs := make([]uuid.UUID, len(results))
	for i, r := range results {
		reportIDs[i] = r.ReportID
	}

	reportsByID := make(map[uuid.UUID]*models.Report, len(reportIDs))
	if len(reportIDs) > 0 {
		var reports []models.Report
		if err := s.db.Where("id IN ?", reportIDs).Find(&reports).Error; err != nil {
			return nil, err
		}
		for i := range reports {
			reportsByID[reports[i].ID] = &reports[i]
		}
	}

	detail := &dto.SearchDetail{
		Search:  search,
		Results: make([]dto.SearchResultDetail, len(results)),
	}
	for i, result := range results {
		detail.Results[i] = dto.SearchResultDetail{
			Result: result,
			Report: reportsByID[result.ReportID],
		}
	}
	return detail, nil
}

// Update rewrites the identifier fields of an owned search header. It does
// NOT re-run matching; the persisted result set is left untouched.
func (s *SearchService) Update(userID, searchID uuid.UUID, in *dto.SearchInput) (*models.Search, error) {
	var search models.Search
	if err := s.db.First(&search, "id = ?", searchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if search.UserID != userID {
		return nil, ErrUnauthorized
	}

	query := in.Identifier()
	if query.Empty() {
		return nil, validationf("at least one identifier field is required")
	}

	search.Identifier = query
	if err := s.db.Save(&search).Error; err != nil {
		return nil, fmt.Errorf("failed to update search: %w", err)
	}
	return &search, nil
}

// Delete removes an owned search and cascades its result rows, never the
// underlying reports.
func (s *SearchService) Delete(userID, searchID uuid.UUID) error {
	var search models.Search
	if err := s.db.First(&search, "id = ?", searchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if search.UserID != userID {
		return ErrUnauthorized
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("search_id = ?", searchID).Delete(&models.SearchResult{}).Error; err != nil {
			return err
		}
		return tx.Delete(&search).Error
	})
}

func (s *SearchService) ListMine(userID uuid.UUID) ([]models.Search, error) {
	var searches []models.Search
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&searches).Error
	return searches, err
}
