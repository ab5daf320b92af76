package models

// ResourceType represents the kind of a lesson resource
type ResourceType string

const (
	ResourceTypeLink     ResourceType = "link"
	ResourceTypeDownload ResourceType = "download"
)

// Resource represents a link or a downloadable file attached to a lesson
type Resource struct {
	ID            string       `json:"id"`
	LessonID      string       `json:"lessonId"`
	Title         string       `json:"title"`
	URL           string       `json:"url"`
	Type          ResourceType `json:"type"`
	OrderPosition int          `json:"orderPosition"`
}

// ItemID returns the resource identifier
func (r Resource) ItemID() string { return r.ID }

// Position returns the resource order position
func (r Resource) Position() int { return r.OrderPosition }

// WithPosition returns a copy of the resource with the given order position
func (r Resource) WithPosition(p int) Resource {
	r.OrderPosition = p
	return r
}

// LessonResources holds the resources of a lesson partitioned by type
type LessonResources struct {
	Links     []Resource `json:"links"`
	Downloads []Resource `json:"downloads"`
}
