package handlers

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"

	"github.com/courseos/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// mockCatalogService is a mock implementation of CatalogService
type mockCatalogService struct {
	modules   []models.Module
	module    *models.Module
	lessons   []models.Lesson
	resources *models.LessonResources
	err       error
}

func (m *mockCatalogService) GetModules(ctx context.Context) ([]models.Module, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.modules, nil
}

func (m *mockCatalogService) GetModule(ctx context.Context, id string) (*models.Module, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.module, nil
}

func (m *mockCatalogService) GetLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

func (m *mockCatalogService) GetLessonResources(ctx context.Context, lessonID string) (*models.LessonResources, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resources, nil
}

// mockNavigationService is a mock implementation of NavigationService
type mockNavigationService struct {
	view         *models.LessonView
	navigation   models.LessonNavigation
	err          error
	lastModuleID string
}

func (m *mockNavigationService) GetLessonView(ctx context.Context, lessonID string) (*models.LessonView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.view, nil
}

func (m *mockNavigationService) GetLessonNavigation(ctx context.Context, lessonID, moduleID string) models.LessonNavigation {
	m.lastModuleID = moduleID
	return m.navigation
}

// mockOrderingService is a mock implementation of OrderingService
type mockOrderingService struct {
	result   *models.ReorderResult
	err      error
	repaired int
	calls    []string
}

func (m *mockOrderingService) record(op string, scope models.ScopeType, scopeID string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf("%s %s %s %v", op, scope, scopeID, args))
}

func (m *mockOrderingService) Reorder(ctx context.Context, scope models.ScopeType, scopeID string, from, to int) (*models.ReorderResult, error) {
	m.record("reorder", scope, scopeID, from, to)
	return m.result, m.err
}

func (m *mockOrderingService) MoveUp(ctx context.Context, scope models.ScopeType, scopeID string, index int) (*models.ReorderResult, error) {
	m.record("move-up", scope, scopeID, index)
	return m.result, m.err
}

func (m *mockOrderingService) MoveDown(ctx context.Context, scope models.ScopeType, scopeID string, index int) (*models.ReorderResult, error) {
	m.record("move-down", scope, scopeID, index)
	return m.result, m.err
}

func (m *mockOrderingService) SetOrder(ctx context.Context, scope models.ScopeType, scopeID string, orderedIDs []string) (*models.ReorderResult, error) {
	m.record("set", scope, scopeID, orderedIDs)
	return m.result, m.err
}

func (m *mockOrderingService) Renumber(ctx context.Context, scope models.ScopeType, scopeID string) (*models.ReorderResult, error) {
	m.record("renumber", scope, scopeID)
	return m.result, m.err
}

func (m *mockOrderingService) RepairAll(ctx context.Context) (int, error) {
	return m.repaired, m.err
}

// fakeLookup is a SearchLookup that matches module titles by substring
type fakeLookup struct {
	modules []models.Module
}

func (f *fakeLookup) Search(ctx context.Context, query string) models.SearchResults {
	results := models.SearchResults{Modules: []models.SearchResult{}, Lessons: []models.SearchResult{}}
	if strings.TrimSpace(query) == "" {
		return results
	}
	for _, m := range f.modules {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(query)) {
			results.Modules = append(results.Modules, models.ModuleSearchResult(m))
		}
	}
	return results
}

type routeRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// serve registers "h" on a fresh router and performs a single request
func serve(h routeRegistrar, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var testLogger = zap.NewNop()

const (
	testModuleID = "7f1c0c8e-8a43-4a4c-9a55-0e4f3f7a2b10"
	testLessonID = "3b2d4c1a-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)
