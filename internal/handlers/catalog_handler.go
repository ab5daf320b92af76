package handlers

import (
	"context"
	"net/http"

	"github.com/courseos/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for public catalog reads
type CatalogService interface {
	// Method GetModules retrieves all modules in order with their active lessons
	//
	// "ctx" is the context for the request.
	//
	// Returns the modules and an error if any.
	GetModules(ctx context.Context) ([]models.Module, error)
	// Method GetModule retrieves a module by its ID
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the module.
	//
	// Returns the module and an error wrapping models.ErrNotFound if it does not exist.
	GetModule(ctx context.Context, id string) (*models.Module, error)
	// Method GetLessonSiblings retrieves the active lessons of a module in order
	//
	// "ctx" is the context for the request.
	// "moduleID" is the ID of the module.
	//
	// Returns the lessons and an error if any.
	GetLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error)
	// Method GetLessonResources retrieves the resources of a lesson partitioned into links and downloads
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the partitioned resources and an error if any.
	GetLessonResources(ctx context.Context, lessonID string) (*models.LessonResources, error)
}

// NavigationService is the interface that wraps methods for lesson navigation
type NavigationService interface {
	// Method GetLessonView retrieves an active lesson with its resources and navigation
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the lesson view and an error wrapping models.ErrNotFound for missing or inactive lessons.
	GetLessonView(ctx context.Context, lessonID string) (*models.LessonView, error)
	// Method GetLessonNavigation resolves the neighbours and position of a lesson inside its module
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	// "moduleID" is the ID of the module owning the lesson.
	//
	// Returns the navigation, empty when it cannot be resolved.
	GetLessonNavigation(ctx context.Context, lessonID, moduleID string) models.LessonNavigation
}

// CatalogHandler handles HTTP requests for the public course catalog
type CatalogHandler struct {
	BaseHandler
	catalog    CatalogService
	navigation NavigationService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog CatalogService, navigation NavigationService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog:     catalog,
		navigation:  navigation,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all catalog handler routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/modules", func(r chi.Router) {
		r.Get("/", h.GetModules)
		r.Get("/{id}", h.GetModule)
		r.Get("/{id}/lessons", h.GetModuleLessons)
	})
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/{id}", h.GetLesson)
		r.Get("/{id}/navigation", h.GetLessonNavigation)
		r.Get("/{id}/resources", h.GetLessonResources)
	})
}

// GetModules handles GET /modules
// @Summary Get all modules
// @Description Get all modules ordered by position with their active lessons and lesson counts
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Module "List of modules"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /modules [get]
func (h *CatalogHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.catalog.GetModules(r.Context())
	if err != nil {
		h.Logger.Error("failed to get modules", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get modules")
		return
	}

	h.RespondJSON(w, http.StatusOK, modules)
}

// GetModule handles GET /modules/{id}
// @Summary Get a module
// @Description Get a single module by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} models.Module "Module"
// @Failure 404 {object} map[string]string "Module not found"
// @Failure 400 {object} map[string]string "Invalid module ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /modules/{id} [get]
func (h *CatalogHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(id) {
		h.RespondError(w, http.StatusBadRequest, "invalid module ID")
		return
	}

	module, err := h.catalog.GetModule(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to get module", zap.String("module_id", id), zap.Error(err))
		h.respondLookupError(w, err, "module not found")
		return
	}

	h.RespondJSON(w, http.StatusOK, module)
}

// GetModuleLessons handles GET /modules/{id}/lessons
// @Summary Get lessons of a module
// @Description Get the active lessons of a module ordered by position
// @Tags catalog
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {array} models.Lesson "List of lessons"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /modules/{id}/lessons [get]
func (h *CatalogHandler) GetModuleLessons(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(id) {
		h.RespondError(w, http.StatusBadRequest, "invalid module ID")
		return
	}

	lessons, err := h.catalog.GetLessonSiblings(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to get module lessons", zap.String("module_id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get lessons")
		return
	}

	h.RespondJSON(w, http.StatusOK, lessons)
}

// GetLesson handles GET /lessons/{id}
// @Summary Get a lesson page
// @Description Get an active lesson with its resources and previous/next navigation
// @Tags catalog
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.LessonView "Lesson view"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [get]
func (h *CatalogHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(id) {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	view, err := h.navigation.GetLessonView(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to get lesson view", zap.String("lesson_id", id), zap.Error(err))
		h.respondLookupError(w, err, "lesson not found")
		return
	}

	h.RespondJSON(w, http.StatusOK, view)
}

// GetLessonNavigation handles GET /lessons/{id}/navigation
// @Summary Get lesson navigation
// @Description Get the previous/next lessons and the 1-based position of a lesson inside its module.
// @Description An empty navigation is returned when it cannot be resolved.
// @Tags catalog
// @Produce json
// @Param id path string true "Lesson ID"
// @Param moduleId query string true "Module ID"
// @Success 200 {object} models.LessonNavigation "Lesson navigation"
// @Failure 400 {object} map[string]string "Missing or invalid ID"
// @Router /lessons/{id}/navigation [get]
func (h *CatalogHandler) GetLessonNavigation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(id) {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}
	moduleID := r.URL.Query().Get("moduleId")
	if moduleID == "" {
		h.RespondError(w, http.StatusBadRequest, "moduleId is required")
		return
	}
	if !validID(moduleID) {
		h.RespondError(w, http.StatusBadRequest, "invalid module ID")
		return
	}

	h.RespondJSON(w, http.StatusOK, h.navigation.GetLessonNavigation(r.Context(), id, moduleID))
}

// GetLessonResources handles GET /lessons/{id}/resources
// @Summary Get lesson resources
// @Description Get the resources of a lesson partitioned into links and downloads, each in order
// @Tags catalog
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.LessonResources "Lesson resources"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id}/resources [get]
func (h *CatalogHandler) GetLessonResources(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validID(id) {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	resources, err := h.catalog.GetLessonResources(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to get lesson resources", zap.String("lesson_id", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get resources")
		return
	}

	h.RespondJSON(w, http.StatusOK, resources)
}
