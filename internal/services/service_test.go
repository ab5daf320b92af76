package services

import (
	"context"

	"github.com/courseos/backend/internal/models"
)

// mockModuleRepository is a mock implementation of ModuleRepository
type mockModuleRepository struct {
	modules           []models.Module
	modulesWithLesson []models.Module
	module            *models.Module
	searchResult      []models.Module
	err               error
	calls             int
}

func (m *mockModuleRepository) FetchModules(ctx context.Context) ([]models.Module, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Module(nil), m.modules...), nil
}

func (m *mockModuleRepository) FetchModulesWithLessons(ctx context.Context) ([]models.Module, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Module(nil), m.modulesWithLesson...), nil
}

func (m *mockModuleRepository) FetchModuleByID(ctx context.Context, id string) (*models.Module, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.module, nil
}

func (m *mockModuleRepository) SearchModules(ctx context.Context, search string) ([]models.Module, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.searchResult, nil
}

// mockLessonRepository is a mock implementation of LessonRepository
type mockLessonRepository struct {
	lesson       *models.Lesson
	lessons      []models.Lesson
	searchResult []models.Lesson
	err          error
	activeOnly   *bool
}

func (m *mockLessonRepository) FetchLessonByID(ctx context.Context, id string) (*models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

func (m *mockLessonRepository) FetchLessonsByModule(ctx context.Context, moduleID string, activeOnly bool) ([]models.Lesson, error) {
	m.activeOnly = &activeOnly
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Lesson(nil), m.lessons...), nil
}

func (m *mockLessonRepository) SearchLessons(ctx context.Context, search string) ([]models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.searchResult, nil
}

// mockResourceRepository is a mock implementation of ResourceRepository
type mockResourceRepository struct {
	resources []models.Resource
	err       error
}

func (m *mockResourceRepository) FetchResourcesByLesson(ctx context.Context, lessonID string) ([]models.Resource, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Resource(nil), m.resources...), nil
}

// mockOrderRepository is a mock implementation of OrderRepository
type mockOrderRepository struct {
	err     error
	calls   int
	scope   models.ScopeType
	scopeID string
	items   []models.OrderUpdate
}

func (m *mockOrderRepository) UpdateOrderPositions(ctx context.Context, scope models.ScopeType, scopeID string, items []models.OrderUpdate) error {
	m.calls++
	m.scope = scope
	m.scopeID = scopeID
	m.items = items
	return m.err
}

// mockCatalogCache is an in-memory implementation of CatalogCache
type mockCatalogCache struct {
	modules       []models.Module
	present       bool
	getErr        error
	setErr        error
	invalidations int
}

func (m *mockCatalogCache) GetModules(ctx context.Context) ([]models.Module, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	return m.modules, m.present, nil
}

func (m *mockCatalogCache) SetModules(ctx context.Context, modules []models.Module) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.modules = modules
	m.present = true
	return nil
}

func (m *mockCatalogCache) InvalidateModules(ctx context.Context) error {
	m.invalidations++
	m.modules = nil
	m.present = false
	return nil
}

// mockOrderCatalog is an in-memory implementation of OrderCatalog
type mockOrderCatalog struct {
	modules    []models.Module
	lessons    map[string][]models.Lesson
	resources  map[string][]models.Resource
	loadErr    error
	persistErr error
	persisted  []persistCall
}

type persistCall struct {
	scope   models.ScopeType
	scopeID string
	changed []models.OrderUpdate
}

func (m *mockOrderCatalog) GetModuleSiblings(ctx context.Context) ([]models.Module, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.modules, nil
}

func (m *mockOrderCatalog) GetAllLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.lessons[moduleID], nil
}

func (m *mockOrderCatalog) GetResourceSiblings(ctx context.Context, lessonID string) ([]models.Resource, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.resources[lessonID], nil
}

func (m *mockOrderCatalog) PersistOrder(ctx context.Context, scope models.ScopeType, scopeID string, changed []models.OrderUpdate) error {
	if len(changed) == 0 {
		return nil
	}
	m.persisted = append(m.persisted, persistCall{scope: scope, scopeID: scopeID, changed: changed})
	return m.persistErr
}

// mockLessonCatalog is a mock implementation of LessonCatalog
type mockLessonCatalog struct {
	lesson       *models.Lesson
	lessonErr    error
	siblings     []models.Lesson
	siblingsErr  error
	resources    *models.LessonResources
	resourcesErr error
}

func (m *mockLessonCatalog) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	if m.lessonErr != nil {
		return nil, m.lessonErr
	}
	return m.lesson, nil
}

func (m *mockLessonCatalog) GetLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error) {
	if m.siblingsErr != nil {
		return nil, m.siblingsErr
	}
	return m.siblings, nil
}

func (m *mockLessonCatalog) GetLessonResources(ctx context.Context, lessonID string) (*models.LessonResources, error) {
	if m.resourcesErr != nil {
		return nil, m.resourcesErr
	}
	return m.resources, nil
}

func lessonsOf(moduleID string, ids ...string) []models.Lesson {
	lessons := make([]models.Lesson, len(ids))
	for i, id := range ids {
		lessons[i] = models.Lesson{ID: id, ModuleID: moduleID, Title: "Lesson " + id, OrderPosition: i + 1, IsActive: true}
	}
	return lessons
}
