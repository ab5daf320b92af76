package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

type resourceRepository struct {
	db *sql.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *sql.DB) *resourceRepository {
	return &resourceRepository{
		db: db,
	}
}

// FetchResourcesByLesson retrieves all resources of a lesson, sorted by order position
func (r *resourceRepository) FetchResourcesByLesson(ctx context.Context, lessonID string) ([]models.Resource, error) {
	query := `
		SELECT id, lesson_id, title, url, type, order_position
		FROM resources
		WHERE lesson_id = ?
		ORDER BY order_position
	`

	rows, err := r.db.QueryContext(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	resources := make([]models.Resource, 0)
	for rows.Next() {
		var resource models.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.LessonID,
			&resource.Title,
			&resource.URL,
			&resource.Type,
			&resource.OrderPosition,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return resources, nil
}
