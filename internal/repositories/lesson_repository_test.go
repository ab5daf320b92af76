package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewLessonRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewLessonRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestLessonRepository_FetchLessonByID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			id:   "l1",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonColumns).
					AddRow("l1", "m1", "Git Basics", "Commits", 12, 1, "https://youtu.be/a", true)
				mock.ExpectQuery(`SELECT .* FROM lessons WHERE id = \? LIMIT 1`).
					WithArgs("l1").
					WillReturnRows(rows)
			},
		},
		{
			name: "lesson not found",
			id:   "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM lessons WHERE id = \? LIMIT 1`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			errorContains: "lesson not found",
		},
		{
			name: "database error",
			id:   "l1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM lessons WHERE id = \? LIMIT 1`).
					WithArgs("l1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to get lesson by id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.FetchLessonByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "l1", result.ID)
				assert.Equal(t, "m1", result.ModuleID)
				require.NotNil(t, result.DurationMinutes)
				assert.Equal(t, 12, *result.DurationMinutes)
				assert.True(t, result.IsActive)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_FetchLessonsByModule(t *testing.T) {
	tests := []struct {
		name          string
		activeOnly    bool
		queryRegex    string
		setupRows     func() *sqlmock.Rows
		queryErr      error
		expectedError bool
		expectedCount int
	}{
		{
			name:       "active lessons only",
			activeOnly: true,
			queryRegex: `SELECT .* FROM lessons WHERE module_id = \? AND is_active = 1 ORDER BY order_position`,
			setupRows: func() *sqlmock.Rows {
				return sqlmock.NewRows(lessonColumns).
					AddRow("l1", "m1", "Git Basics", "Commits", nil, 1, nil, true).
					AddRow("l2", "m1", "Git Log", "History", nil, 2, nil, true)
			},
			expectedCount: 2,
		},
		{
			name:       "all lessons",
			activeOnly: false,
			queryRegex: `SELECT .* FROM lessons WHERE module_id = \? ORDER BY order_position`,
			setupRows: func() *sqlmock.Rows {
				return sqlmock.NewRows(lessonColumns).
					AddRow("l1", "m1", "Git Basics", "Commits", nil, 1, nil, true).
					AddRow("l2", "m1", "Draft", "Not published", nil, 2, nil, false).
					AddRow("l3", "m1", "Git Log", "History", nil, 3, nil, true)
			},
			expectedCount: 3,
		},
		{
			name:          "database error",
			activeOnly:    true,
			queryRegex:    `SELECT .* FROM lessons WHERE module_id = \?`,
			queryErr:      errors.New("database error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			expectation := mock.ExpectQuery(tt.queryRegex).WithArgs("m1")
			if tt.queryErr != nil {
				expectation.WillReturnError(tt.queryErr)
			} else {
				expectation.WillReturnRows(tt.setupRows())
			}

			result, err := repo.FetchLessonsByModule(context.Background(), "m1", tt.activeOnly)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to query lessons")
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_SearchLessons(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows(lessonColumns).
		AddRow("l1", "m1", "Git Basics", "Commits", nil, 1, nil, true)
	mock.ExpectQuery(`SELECT .* FROM lessons WHERE is_active = 1 AND \(LOWER\(title\) LIKE \? OR LOWER\(description\) LIKE \?\)`).
		WithArgs("%git%", "%git%").
		WillReturnRows(rows)

	result, err := repo.SearchLessons(context.Background(), "Git")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Git Basics", result[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_SearchLessons_Error(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM lessons WHERE is_active = 1`).
		WillReturnError(errors.New("database error"))

	result, err := repo.SearchLessons(context.Background(), "git")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search lessons")
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
