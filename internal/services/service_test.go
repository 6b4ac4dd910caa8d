package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/AbhiraajV/credate/internal/dto"
	"github.com/AbhiraajV/credate/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// domain models. The DSN is derived from the test name so parallel tests
// never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Report{},
		&models.AccessRequest{},
		&models.Search{},
		&models.SearchResult{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	user := models.User{ID: uuid.New(), Email: email, Password: "irrelevant"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func validReportInput() *dto.ReportInput {
	return &dto.ReportInput{
		Name:        "John Doe",
		Email:       "john@example.com",
		Rating:      8,
		Description: "met twice, seemed genuine",
	}
}

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(db, NewContentFilter())
}

func newAccessService(db *gorm.DB) *AccessService {
	return NewAccessService(db, NewContentFilter())
}
