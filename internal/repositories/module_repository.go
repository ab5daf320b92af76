package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

type moduleRepository struct {
	db *sql.DB
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *sql.DB) *moduleRepository {
	return &moduleRepository{
		db: db,
	}
}

// FetchModules retrieves all modules with their active lesson count, sorted by order position
func (r *moduleRepository) FetchModules(ctx context.Context) ([]models.Module, error) {
	query := `
		SELECT
			m.id,
			m.title,
			m.description,
			m.order_position,
			(SELECT COUNT(*) FROM lessons l WHERE l.module_id = m.id AND l.is_active = 1) AS lesson_count
		FROM modules m
		ORDER BY m.order_position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	modules := make([]models.Module, 0)
	for rows.Next() {
		var module models.Module
		err := rows.Scan(
			&module.ID,
			&module.Title,
			&module.Description,
			&module.OrderPosition,
			&module.LessonCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return modules, nil
}

// FetchModulesWithLessons retrieves all modules, each with its active lessons
func (r *moduleRepository) FetchModulesWithLessons(ctx context.Context) ([]models.Module, error) {
	modules, err := r.FetchModules(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, module_id, title, description, duration_minutes, order_position, video_url, is_active
		FROM lessons
		WHERE is_active = 1
		ORDER BY module_id, order_position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	byModule := make(map[string][]models.Lesson, len(modules))
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		byModule[lesson.ModuleID] = append(byModule[lesson.ModuleID], *lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	for i := range modules {
		modules[i].Lessons = byModule[modules[i].ID]
	}

	return modules, nil
}

// FetchModuleByID retrieves a module by its ID
func (r *moduleRepository) FetchModuleByID(ctx context.Context, id string) (*models.Module, error) {
	query := `
		SELECT
			m.id,
			m.title,
			m.description,
			m.order_position,
			(SELECT COUNT(*) FROM lessons l WHERE l.module_id = m.id AND l.is_active = 1) AS lesson_count
		FROM modules m
		WHERE m.id = ?
		LIMIT 1
	`

	var module models.Module
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&module.ID,
		&module.Title,
		&module.Description,
		&module.OrderPosition,
		&module.LessonCount,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("module %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get module by id: %w", err)
	}

	return &module, nil
}

// SearchModules retrieves modules whose title or description contains "search", case-insensitively
func (r *moduleRepository) SearchModules(ctx context.Context, search string) ([]models.Module, error) {
	query := `
		SELECT id, title, description, order_position
		FROM modules
		WHERE LOWER(title) LIKE ? OR LOWER(description) LIKE ?
		ORDER BY order_position
	`

	pattern := containsPattern(search)
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search modules: %w", err)
	}
	defer rows.Close()

	modules := make([]models.Module, 0)
	for rows.Next() {
		var module models.Module
		err := rows.Scan(
			&module.ID,
			&module.Title,
			&module.Description,
			&module.OrderPosition,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return modules, nil
}
