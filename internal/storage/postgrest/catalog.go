package postgrest

import (
	"context"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

// FetchModules retrieves all modules with their active lesson count, sorted by order position
func (c *Client) FetchModules(ctx context.Context) ([]models.Module, error) {
	var rows []moduleRow
	err := c.get(ctx, modulesView, map[string]string{
		"select": moduleColumns,
		"order":  "order_position.asc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch modules: %w", err)
	}

	modules := make([]models.Module, 0, len(rows))
	for _, row := range rows {
		modules = append(modules, row.toModel())
	}
	return modules, nil
}

// FetchModulesWithLessons retrieves all modules, each with its active lessons
func (c *Client) FetchModulesWithLessons(ctx context.Context) ([]models.Module, error) {
	modules, err := c.FetchModules(ctx)
	if err != nil {
		return nil, err
	}

	var rows []lessonRow
	err = c.get(ctx, lessonsTable, map[string]string{
		"select":    lessonColumns,
		"is_active": "is.true",
		"order":     "module_id.asc,order_position.asc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons: %w", err)
	}

	byModule := make(map[string][]models.Lesson, len(modules))
	for _, row := range rows {
		byModule[row.ModuleID] = append(byModule[row.ModuleID], row.toModel())
	}
	for i := range modules {
		modules[i].Lessons = byModule[modules[i].ID]
	}

	return modules, nil
}

// FetchModuleByID retrieves a module by its ID
func (c *Client) FetchModuleByID(ctx context.Context, id string) (*models.Module, error) {
	var rows []moduleRow
	err := c.get(ctx, modulesView, map[string]string{
		"select": moduleColumns,
		"id":     eq(id),
		"limit":  "1",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get module by id: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("module %w", models.ErrNotFound)
	}

	module := rows[0].toModel()
	return &module, nil
}

// FetchLessonByID retrieves a lesson by its ID
func (c *Client) FetchLessonByID(ctx context.Context, id string) (*models.Lesson, error) {
	var rows []lessonRow
	err := c.get(ctx, lessonsTable, map[string]string{
		"select": lessonColumns,
		"id":     eq(id),
		"limit":  "1",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("lesson %w", models.ErrNotFound)
	}

	lesson := rows[0].toModel()
	return &lesson, nil
}

// FetchLessonsByModule retrieves the lessons of a module sorted by order position.
// Inactive lessons are included only when "activeOnly" is false.
func (c *Client) FetchLessonsByModule(ctx context.Context, moduleID string, activeOnly bool) ([]models.Lesson, error) {
	params := map[string]string{
		"select":    lessonColumns,
		"module_id": eq(moduleID),
		"order":     "order_position.asc",
	}
	if activeOnly {
		params["is_active"] = "is.true"
	}

	var rows []lessonRow
	if err := c.get(ctx, lessonsTable, params, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch lessons: %w", err)
	}

	lessons := make([]models.Lesson, 0, len(rows))
	for _, row := range rows {
		lessons = append(lessons, row.toModel())
	}
	return lessons, nil
}

// FetchResourcesByLesson retrieves all resources of a lesson, sorted by order position
func (c *Client) FetchResourcesByLesson(ctx context.Context, lessonID string) ([]models.Resource, error) {
	var rows []resourceRow
	err := c.get(ctx, resourcesTable, map[string]string{
		"select":    resourceColumns,
		"lesson_id": eq(lessonID),
		"order":     "order_position.asc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}

	resources := make([]models.Resource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, row.toModel())
	}
	return resources, nil
}

// SearchModules retrieves modules whose title or description contains "search", case-insensitively
func (c *Client) SearchModules(ctx context.Context, search string) ([]models.Module, error) {
	var rows []moduleRow
	err := c.get(ctx, modulesTable, map[string]string{
		"select": "id,title,description,order_position",
		"or":     containsFilter(search),
		"order":  "order_position.asc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to search modules: %w", err)
	}

	modules := make([]models.Module, 0, len(rows))
	for _, row := range rows {
		modules = append(modules, row.toModel())
	}
	return modules, nil
}

// SearchLessons retrieves active lessons whose title or description contains "search", case-insensitively
func (c *Client) SearchLessons(ctx context.Context, search string) ([]models.Lesson, error) {
	var rows []lessonRow
	err := c.get(ctx, lessonsTable, map[string]string{
		"select":    lessonColumns,
		"is_active": "is.true",
		"or":        containsFilter(search),
		"order":     "order_position.asc",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to search lessons: %w", err)
	}

	lessons := make([]models.Lesson, 0, len(rows))
	for _, row := range rows {
		lessons = append(lessons, row.toModel())
	}
	return lessons, nil
}
