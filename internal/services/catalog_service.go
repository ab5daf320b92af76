package services

import (
	"cmp"
	"context"
	"slices"

	"github.com/courseos/backend/internal/models"
	"go.uber.org/zap"
)

// ModuleRepository is the interface that wraps methods for modules data access
type ModuleRepository interface {
	// Method FetchModules retrieve all modules without their lessons.
	//
	// Each module carries the number of its active lessons in LessonCount.
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	FetchModules(ctx context.Context) ([]models.Module, error)
	// Method FetchModulesWithLessons retrieve all modules, each with its active lessons.
	//
	// Please reference FetchModules method for more information about error values.
	FetchModulesWithLessons(ctx context.Context) ([]models.Module, error)
	// Method FetchModuleByID retrieve a module by its ID.
	//
	// If the module does not exist, the returned error wraps models.ErrNotFound.
	FetchModuleByID(ctx context.Context, id string) (*models.Module, error)
	// Method SearchModules retrieve modules whose title or description contains "search", case-insensitively.
	SearchModules(ctx context.Context, search string) ([]models.Module, error)
}

// LessonRepository is the interface that wraps methods for lessons data access
type LessonRepository interface {
	// Method FetchLessonByID retrieve a lesson by its ID, whether active or not.
	//
	// If the lesson does not exist, the returned error wraps models.ErrNotFound.
	FetchLessonByID(ctx context.Context, id string) (*models.Lesson, error)
	// Method FetchLessonsByModule retrieve the lessons of the module "moduleID".
	//
	// "activeOnly" parameter is used to hide lessons that are not published yet.
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	FetchLessonsByModule(ctx context.Context, moduleID string, activeOnly bool) ([]models.Lesson, error)
	// Method SearchLessons retrieve active lessons whose title or description contains "search", case-insensitively.
	SearchLessons(ctx context.Context, search string) ([]models.Lesson, error)
}

// ResourceRepository is the interface that wraps methods for lesson resources data access
type ResourceRepository interface {
	// Method FetchResourcesByLesson retrieve all resources attached to the lesson "lessonID".
	FetchResourcesByLesson(ctx context.Context, lessonID string) ([]models.Resource, error)
}

// OrderRepository is the interface that wraps the order positions write path
type OrderRepository interface {
	// Method UpdateOrderPositions atomically writes the given order positions.
	//
	// "scope" and "scopeID" identify the sibling scope: the module ID for lessons, the lesson ID for resources
	// and an empty string for modules. Either every item is updated or none is.
	// If some item does not belong to the scope, the returned error wraps models.ErrNotFound.
	UpdateOrderPositions(ctx context.Context, scope models.ScopeType, scopeID string, items []models.OrderUpdate) error
}

// CatalogCache is the interface that wraps the read cache of the module list
type CatalogCache interface {
	// Method GetModules returns the cached module list and whether it was present.
	GetModules(ctx context.Context) ([]models.Module, bool, error)
	// Method SetModules stores the module list.
	SetModules(ctx context.Context, modules []models.Module) error
	// Method InvalidateModules drops the cached module list.
	InvalidateModules(ctx context.Context) error
}

type catalogService struct {
	modules   ModuleRepository
	lessons   LessonRepository
	resources ResourceRepository
	orders    OrderRepository
	cache     CatalogCache
	logger    *zap.Logger
}

// NewCatalogService creates a new catalog service.
//
// "cache" may be nil, in which case every read goes to storage.
func NewCatalogService(
	modules ModuleRepository,
	lessons LessonRepository,
	resources ResourceRepository,
	orders OrderRepository,
	cache CatalogCache,
	logger *zap.Logger,
) *catalogService {
	return &catalogService{
		modules:   modules,
		lessons:   lessons,
		resources: resources,
		orders:    orders,
		cache:     cache,
		logger:    logger,
	}
}

// GetModules retrieves all modules with their active lessons, both sorted by order position
func (s *catalogService) GetModules(ctx context.Context) ([]models.Module, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetModules(ctx)
		if err != nil {
			s.logger.Warn("failed to read modules from cache", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	modules, err := s.modules.FetchModulesWithLessons(ctx)
	if err != nil {
		return nil, storageError("fetch modules", err)
	}

	sortByPosition(modules)
	for i := range modules {
		lessons := activeLessons(modules[i].Lessons)
		sortByPosition(lessons)
		modules[i].Lessons = lessons
		modules[i].LessonCount = len(lessons)
	}

	if s.cache != nil {
		if err := s.cache.SetModules(ctx, modules); err != nil {
			s.logger.Warn("failed to write modules to cache", zap.Error(err))
		}
	}

	return modules, nil
}

// GetModule retrieves a module by its ID, without lessons
func (s *catalogService) GetModule(ctx context.Context, id string) (*models.Module, error) {
	module, err := s.modules.FetchModuleByID(ctx, id)
	if err != nil {
		return nil, storageError("fetch module", err)
	}
	return module, nil
}

// GetLesson retrieves a lesson by its ID
func (s *catalogService) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	lesson, err := s.lessons.FetchLessonByID(ctx, id)
	if err != nil {
		return nil, storageError("fetch lesson", err)
	}
	return lesson, nil
}

// GetLessonSiblings retrieves the active lessons of a module sorted by order position
func (s *catalogService) GetLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error) {
	lessons, err := s.lessons.FetchLessonsByModule(ctx, moduleID, true)
	if err != nil {
		return nil, storageError("fetch lessons", err)
	}
	lessons = activeLessons(lessons)
	sortByPosition(lessons)
	return lessons, nil
}

// GetAllLessonSiblings retrieves every lesson of a module, active or not, sorted by order position.
// This is the ordering scope of lessons.
func (s *catalogService) GetAllLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error) {
	lessons, err := s.lessons.FetchLessonsByModule(ctx, moduleID, false)
	if err != nil {
		return nil, storageError("fetch lessons", err)
	}
	sortByPosition(lessons)
	return lessons, nil
}

// GetModuleSiblings retrieves all modules without lessons sorted by order position
func (s *catalogService) GetModuleSiblings(ctx context.Context) ([]models.Module, error) {
	modules, err := s.modules.FetchModules(ctx)
	if err != nil {
		return nil, storageError("fetch modules", err)
	}
	sortByPosition(modules)
	return modules, nil
}

// GetLessonResources retrieves the resources of a lesson partitioned into links and downloads
func (s *catalogService) GetLessonResources(ctx context.Context, lessonID string) (*models.LessonResources, error) {
	resources, err := s.GetResourceSiblings(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	result := &models.LessonResources{
		Links:     make([]models.Resource, 0),
		Downloads: make([]models.Resource, 0),
	}
	for _, resource := range resources {
		switch resource.Type {
		case models.ResourceTypeLink:
			result.Links = append(result.Links, resource)
		case models.ResourceTypeDownload:
			result.Downloads = append(result.Downloads, resource)
		default:
			s.logger.Debug("skipping resource of unknown type",
				zap.String("resource_id", resource.ID),
				zap.String("type", string(resource.Type)),
			)
		}
	}

	return result, nil
}

// GetResourceSiblings retrieves every resource of a lesson sorted by order position
func (s *catalogService) GetResourceSiblings(ctx context.Context, lessonID string) ([]models.Resource, error) {
	resources, err := s.resources.FetchResourcesByLesson(ctx, lessonID)
	if err != nil {
		return nil, storageError("fetch resources", err)
	}
	sortByPosition(resources)
	return resources, nil
}

// SearchModules retrieves modules matching "query" in storage order
func (s *catalogService) SearchModules(ctx context.Context, query string) ([]models.Module, error) {
	modules, err := s.modules.SearchModules(ctx, query)
	if err != nil {
		return nil, storageError("search modules", err)
	}
	return modules, nil
}

// SearchLessons retrieves active lessons matching "query" in storage order
func (s *catalogService) SearchLessons(ctx context.Context, query string) ([]models.Lesson, error) {
	lessons, err := s.lessons.SearchLessons(ctx, query)
	if err != nil {
		return nil, storageError("search lessons", err)
	}
	return lessons, nil
}

// PersistOrder writes the changed order positions of a scope in one atomic update.
//
// An empty "changed" slice is a no-op. On success the cached module list is dropped.
func (s *catalogService) PersistOrder(ctx context.Context, scope models.ScopeType, scopeID string, changed []models.OrderUpdate) error {
	if len(changed) == 0 {
		return nil
	}

	if err := s.orders.UpdateOrderPositions(ctx, scope, scopeID, changed); err != nil {
		return storageError("update order positions", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateModules(ctx); err != nil {
			s.logger.Warn("failed to invalidate modules cache", zap.Error(err))
		}
	}

	return nil
}

type positioned interface {
	Position() int
}

// sortByPosition stable-sorts items by ascending order position
func sortByPosition[T positioned](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(a.Position(), b.Position())
	})
}

func activeLessons(lessons []models.Lesson) []models.Lesson {
	active := make([]models.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if lesson.IsActive {
			active = append(active, lesson)
		}
	}
	return active
}
