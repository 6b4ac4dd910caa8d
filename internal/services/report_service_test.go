package services

import (
	"strings"
	"testing"

	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReport_RequiresAtLeastOneIdentifier(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")

	_, err := svc.Create(owner, &dto.ReportInput{Rating: 5, Description: "no identifiers here"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	var count int64
	db.Model(&models.Report{}).Count(&count)
	assert.Zero(t, count, "nothing should be written on validation failure")
}

func TestCreateReport_RatingBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")

	for _, rating := range []int{-1, 11, 100} {
		in := validReportInput()
		in.Rating = rating
		_, err := svc.Create(owner, in)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "rating %d must be rejected", rating)
	}

	for _, rating := range []int{0, 10} {
		in := validReportInput()
		in.Rating = rating
		report, err := svc.Create(owner, in)
		require.NoError(t, err, "boundary rating %d must be accepted", rating)
		assert.Equal(t, rating, report.Rating)
	}
}

func TestCreateReport_DescriptionTooLong(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")

	in := validReportInput()
	in.Description = strings.Repeat("a", 1001)

	_, err := svc.Create(owner, in)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateReport_ProfanityRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")

	in := validReportInput()
	in.Description = "this guy is a total scam artist"

	_, err := svc.Create(owner, in)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateReport_OwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")
	stranger := seedUser(t, db, "stranger@test.io")

	report, err := svc.Create(owner, validReportInput())
	require.NoError(t, err)

	in := validReportInput()
	in.Rating = 2

	_, err = svc.Update(stranger, report.ID, in)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Update(owner, uuid.New(), in)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(owner, report.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
}

func TestGetReport_VisibleToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")

	report, err := svc.Create(owner, validReportInput())
	require.NoError(t, err)

	got, err := svc.GetByID(owner, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
}

func TestGetReport_HiddenFromStrangers(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")
	stranger := seedUser(t, db, "stranger@test.io")

	report, err := svc.Create(owner, validReportInput())
	require.NoError(t, err)

	// same error for "forbidden" as for "absent" — no existence leak
	_, err = svc.GetByID(stranger, report.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(stranger, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReport_VisibleToApprovedRequester(t *testing.T) {
	db := newTestDB(t)
	reports := newReportService(db)
	access := newAccessService(db)
	owner := seedUser(t, db, "owner@test.io")
	requester := seedUser(t, db, "requester@test.io")

	report, err := reports.Create(owner, validReportInput())
	require.NoError(t, err)

	request, err := access.Request(requester, report.ID, "please let me see this report")
	require.NoError(t, err)

	_, err = reports.GetByID(requester, report.ID)
	assert.ErrorIs(t, err, ErrNotFound, "pending request grants nothing")

	_, err = access.Approve(owner, request.ID)
	require.NoError(t, err)

	got, err := reports.GetByID(requester, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
}

func TestDeleteReport_OwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")
	stranger := seedUser(t, db, "stranger@test.io")

	report, err := svc.Create(owner, validReportInput())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(stranger, report.ID), ErrUnauthorized)
	assert.ErrorIs(t, svc.Delete(owner, uuid.New()), ErrNotFound)
	require.NoError(t, svc.Delete(owner, report.ID))

	_, err = svc.GetByID(owner, report.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReport_CascadesAccessRequests(t *testing.T) {
	db := newTestDB(t)
	reports := newReportService(db)
	access := newAccessService(db)
	owner := seedUser(t, db, "owner@test.io")
	requester := seedUser(t, db, "requester@test.io")

	report, err := reports.Create(owner, validReportInput())
	require.NoError(t, err)

	_, err = access.Request(requester, report.ID, "please let me see this report")
	require.NoError(t, err)

	require.NoError(t, reports.Delete(owner, report.ID))

	var count int64
	db.Model(&models.AccessRequest{}).Where("report_id = ?", report.ID).Count(&count)
	assert.Zero(t, count)
}

func TestListMineReports(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	owner := seedUser(t, db, "owner@test.io")
	other := seedUser(t, db, "other@test.io")

	_, err := svc.Create(owner, validReportInput())
	require.NoError(t, err)
	_, err = svc.Create(other, validReportInput())
	require.NoError(t, err)

	mine, err := svc.ListMine(owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, owner, mine[0].UserID)
}
