package services

import (
	"testing"

	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full walk through the product flow: report, search, a rejected and then
// accepted access request, approval, and the resulting read grant.
func TestReportAccessFlow(t *testing.T) {
	db := newTestDB(t)
	reports := newReportService(db)
	access := newAccessService(db)
	searches := NewSearchService(db)

	userA := seedUser(t, db, "a@test.io")
	userB := seedUser(t, db, "b@test.io")

	// A reports John Doe
	report, err := reports.Create(userA, &dto.ReportInput{Name: "John Doe", Rating: 8})
	require.NoError(t, err)

	// B searches for him
	detail, err := searches.Create(userB, &dto.SearchInput{Name: "John Doe"})
	require.NoError(t, err)
	require.Len(t, detail.Results, 1)
	assert.Equal(t, "name", detail.Results[0].Result.MatchedOn)
	assert.Equal(t, report.ID, detail.Results[0].Result.ReportID)

	// B cannot read the full report yet
	_, err = reports.GetByID(userB, report.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// a 5-character message is below the minimum
	_, err = access.Request(userB, report.ID, "hello")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// resubmitting with a proper message creates a PENDING request
	request, err := access.Request(userB, report.ID, "we matched on an app, 20c")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, request.Status)

	// A approves; B can now read the report
	approved, err := access.Approve(userA, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	got, err := reports.GetByID(userB, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, 8, got.Rating)
}
