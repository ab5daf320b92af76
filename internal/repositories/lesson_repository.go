package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanLesson scans a lesson row selected in the standard column order
func scanLesson(row rowScanner) (*models.Lesson, error) {
	var lesson models.Lesson
	var duration sql.NullInt64
	var videoURL sql.NullString
	err := row.Scan(
		&lesson.ID,
		&lesson.ModuleID,
		&lesson.Title,
		&lesson.Description,
		&duration,
		&lesson.OrderPosition,
		&videoURL,
		&lesson.IsActive,
	)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		minutes := int(duration.Int64)
		lesson.DurationMinutes = &minutes
	}
	lesson.VideoURL = videoURL.String
	return &lesson, nil
}

// FetchLessonByID retrieves a lesson by its ID
func (r *lessonRepository) FetchLessonByID(ctx context.Context, id string) (*models.Lesson, error) {
	query := `
		SELECT id, module_id, title, description, duration_minutes, order_position, video_url, is_active
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lesson %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return lesson, nil
}

// FetchLessonsByModule retrieves the lessons of a module sorted by order position.
// Inactive lessons are included only when "activeOnly" is false.
func (r *lessonRepository) FetchLessonsByModule(ctx context.Context, moduleID string, activeOnly bool) ([]models.Lesson, error) {
	query := `
		SELECT id, module_id, title, description, duration_minutes, order_position, video_url, is_active
		FROM lessons
		WHERE module_id = ?
	`
	if activeOnly {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY order_position`

	rows, err := r.db.QueryContext(ctx, query, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := make([]models.Lesson, 0)
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// SearchLessons retrieves active lessons whose title or description contains "search", case-insensitively
func (r *lessonRepository) SearchLessons(ctx context.Context, search string) ([]models.Lesson, error) {
	query := `
		SELECT id, module_id, title, description, duration_minutes, order_position, video_url, is_active
		FROM lessons
		WHERE is_active = 1 AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)
		ORDER BY order_position
	`

	pattern := containsPattern(search)
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search lessons: %w", err)
	}
	defer rows.Close()

	lessons := make([]models.Lesson, 0)
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}
