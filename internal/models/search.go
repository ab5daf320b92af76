package models

// SearchResultType is the discriminant of a search hit
type SearchResultType string

const (
	SearchResultModule SearchResultType = "module"
	SearchResultLesson SearchResultType = "lesson"
)

// SearchResult is a single tagged search hit. ModuleID is set for lessons only.
type SearchResult struct {
	Type        SearchResultType `json:"type"`
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ModuleID    string           `json:"moduleId,omitempty"`
}

// SearchResults holds search hits grouped by type, each group in source order
type SearchResults struct {
	Modules []SearchResult `json:"modules"`
	Lessons []SearchResult `json:"lessons"`
}

// All returns the merged hits, modules first then lessons
func (r SearchResults) All() []SearchResult {
	all := make([]SearchResult, 0, len(r.Modules)+len(r.Lessons))
	all = append(all, r.Modules...)
	all = append(all, r.Lessons...)
	return all
}

// Len returns the total number of hits
func (r SearchResults) Len() int {
	return len(r.Modules) + len(r.Lessons)
}

// ModuleSearchResult tags a module as a search hit
func ModuleSearchResult(m Module) SearchResult {
	return SearchResult{
		Type:        SearchResultModule,
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
	}
}

// LessonSearchResult tags a lesson as a search hit
func LessonSearchResult(l Lesson) SearchResult {
	return SearchResult{
		Type:        SearchResultLesson,
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		ModuleID:    l.ModuleID,
	}
}
