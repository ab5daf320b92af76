package models

// Lesson represents a lesson inside a module
type Lesson struct {
	ID              string     `json:"id"`
	ModuleID        string     `json:"moduleId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	OrderPosition   int        `json:"orderPosition"`
	VideoURL        string     `json:"videoUrl,omitempty"`
	IsActive        bool       `json:"isActive"`
	Resources       []Resource `json:"resources,omitempty"`
}

// ItemID returns the lesson identifier
func (l Lesson) ItemID() string { return l.ID }

// Position returns the lesson order position
func (l Lesson) Position() int { return l.OrderPosition }

// WithPosition returns a copy of the lesson with the given order position
func (l Lesson) WithPosition(p int) Lesson {
	l.OrderPosition = p
	return l
}

// Ref returns the short reference used by navigation
func (l Lesson) Ref() *LessonRef {
	return &LessonRef{ID: l.ID, Title: l.Title}
}

// LessonView represents the public lesson page: the lesson, its resources and navigation
type LessonView struct {
	Lesson     Lesson           `json:"lesson"`
	Resources  LessonResources  `json:"resources"`
	Navigation LessonNavigation `json:"navigation"`
}
