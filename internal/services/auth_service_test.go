package services

import (
	"testing"
	"time"

	"github.com/AbhiraajV/credate/internal/config"
	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@test.io", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "a@test.io", resp.User.Email)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@test.io", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.Register(&dto.RegisterRequest{Email: "b@test.io", Password: "short"})
	assert.Error(t, err)

	login, err := svc.Login(&dto.LoginRequest{Email: "a@test.io", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "a@test.io", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@test.io", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// the old token is revoked after one use
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@test.io", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDeleteAccount_CascadesOwnedRows(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	reports := newReportService(db)
	access := newAccessService(db)
	searches := NewSearchService(db)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@test.io", Password: "password123"})
	require.NoError(t, err)
	userID := resp.User.ID
	other := seedUser(t, db, "other@test.io")

	report, err := reports.Create(userID, validReportInput())
	require.NoError(t, err)
	_, err = access.Request(other, report.ID, "please let me see this report")
	require.NoError(t, err)
	search, err := searches.Create(userID, &dto.SearchInput{Email: "john@example.com"})
	require.NoError(t, err)
	require.Len(t, search.Results, 1)

	require.ErrorIs(t, svc.DeleteAccount(userID, "wrongpassword"), ErrInvalidCredentials)
	require.NoError(t, svc.DeleteAccount(userID, "password123"))

	var count int64
	db.Model(&models.Report{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.AccessRequest{}).Where("report_owner_id = ?", userID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Search{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.SearchResult{}).Where("search_id = ?", search.Search.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.RefreshToken{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
}
